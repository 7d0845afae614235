package releases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/go-version"
)

// ChecksumManifest is the name of the per-release checksum file published
// next to the assets, in sha256sum output format.
const ChecksumManifest = "SHA256SUM"

// manifests are small; anything bigger than this is not one
const maxManifestSize = 1 << 20

// Checksum fetches the release's checksum manifest and returns the sha256
// hex digest recorded for assetName.
func (c *Client) Checksum(ctx context.Context, v *version.Version, assetName string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", c.downloadURL, v.Original(), ChecksumManifest)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRequest, "building checksum request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRequest, "fetching checksum manifest")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", errors.Newf(errors.ErrChecksumNotFound, "release %s publishes no checksum manifest", v).
			WithDetail("version", v.String()).
			WithDetail("asset", assetName)
	case resp.StatusCode != http.StatusOK:
		return "", errors.Newf(errors.ErrRequest, "fetching checksum manifest: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRequest, "reading checksum manifest")
	}

	sum, ok := parseChecksumManifest(string(body), assetName)
	if !ok {
		return "", errors.Newf(errors.ErrChecksumNotFound, "no checksum for %s in release %s", assetName, v).
			WithDetail("version", v.String()).
			WithDetail("asset", assetName)
	}
	return sum, nil
}

// parseChecksumManifest scans sha256sum-format lines ("<hex>  <name>") for
// the given asset name. Binary-mode lines prefix the name with '*'.
func parseChecksumManifest(manifest, assetName string) (string, bool) {
	for _, line := range strings.Split(manifest, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		name := strings.TrimPrefix(fields[1], "*")
		if name == assetName {
			return strings.ToLower(fields[0]), true
		}
	}
	return "", false
}

// VerifyChecksum compares the sha256 digest of the file at path against
// the expected hex digest.
func VerifyChecksum(path, expected string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "opening %s", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "hashing %s", path)
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(actual, expected) {
		return errors.Newf(errors.ErrChecksumMismatch, "checksum mismatch: expected %s, got %s", expected, actual).
			WithDetail("expected", expected).
			WithDetail("actual", actual)
	}
	return nil
}
