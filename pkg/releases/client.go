// Package releases talks to the WasmEdge release distribution: listing
// published versions, resolving "latest", fetching checksums, and
// downloading assets.
package releases

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/go-version"
	"github.com/rs/zerolog"
)

// Options configures a Client
type Options struct {
	// APIURL is the release API root, e.g.
	// https://api.github.com/repos/WasmEdge/WasmEdge
	APIURL string
	// DownloadURL is the asset download root, e.g.
	// https://github.com/WasmEdge/WasmEdge/releases/download
	DownloadURL string
	// NoProgress disables the download progress bar
	NoProgress bool
}

// Client fetches release metadata and assets
type Client struct {
	http        *retryablehttp.Client
	apiURL      string
	downloadURL string
	noProgress  bool
}

// New creates a Client with a retrying HTTP transport
func New(opts Options) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = cleanhttp.DefaultPooledClient()
	rc.RetryMax = 3
	rc.Logger = retryLogger{log: logging.GetLogger("releases.http")}

	return &Client{
		http:        rc,
		apiURL:      strings.TrimSuffix(opts.APIURL, "/"),
		downloadURL: strings.TrimSuffix(opts.DownloadURL, "/"),
		noProgress:  opts.NoProgress,
	}
}

// retryLogger adapts zerolog to retryablehttp's LeveledLogger
type retryLogger struct {
	log zerolog.Logger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.log.Error().Fields(kv).Msg(msg) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.log.Warn().Fields(kv).Msg(msg) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.log.Info().Fields(kv).Msg(msg) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.log.Debug().Fields(kv).Msg(msg) }

// release is the subset of the API's release object this client reads
type release struct {
	TagName    string `json:"tag_name"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
}

// Releases lists published release versions, newest first. Drafts and tags
// that do not parse as versions are skipped.
func (c *Client) Releases(ctx context.Context) ([]*version.Version, error) {
	logger := logging.GetLogger("releases")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/releases?per_page=100", nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "building release list request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "listing releases")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.ErrRequest, "listing releases: unexpected status %s", resp.Status)
	}

	var raw []release
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "decoding release list")
	}

	versions := make([]*version.Version, 0, len(raw))
	for _, r := range raw {
		if r.Draft {
			continue
		}
		v, err := version.NewVersion(r.TagName)
		if err != nil {
			logger.Debug().Str("tag", r.TagName).Msg("Skipping unparseable release tag")
			continue
		}
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(version.Collection(versions)))

	logger.Debug().Int("count", len(versions)).Msg("Listed releases")
	return versions, nil
}

// Latest returns the newest non-prerelease version
func (c *Client) Latest(ctx context.Context) (*version.Version, error) {
	versions, err := c.Releases(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range versions {
		if v.Prerelease() == "" {
			return v, nil
		}
	}
	return nil, errors.New(errors.ErrVersionNotFound, "no stable release found")
}

// Resolve maps a user-supplied version spec to a concrete version.
// "latest" (and the empty string) resolve to the newest stable release;
// anything else must parse as a version.
func (c *Client) Resolve(ctx context.Context, spec string) (*version.Version, error) {
	if spec == "" || spec == "latest" {
		return c.Latest(ctx)
	}
	v, err := version.NewVersion(spec)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVersionInvalid, "invalid version %q", spec)
	}
	return v, nil
}
