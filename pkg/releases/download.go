package releases

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Arshdeep54/wasmedgeup/pkg/errors"
	"github.com/Arshdeep54/wasmedgeup/pkg/logging"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/go-version"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Download streams the named release asset into dir and returns the path
// of the downloaded file. A progress bar is shown on interactive terminals
// unless disabled.
func (c *Client) Download(ctx context.Context, v *version.Version, assetName, dir string) (string, error) {
	logger := logging.GetLogger("releases")
	url := fmt.Sprintf("%s/%s/%s", c.downloadURL, v.Original(), assetName)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRequest, "building download request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownload, "downloading %s", assetName)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrDownload, "downloading %s: unexpected status %s", assetName, resp.Status).
			WithDetail("url", url)
	}

	dest := filepath.Join(dir, assetName)
	f, err := os.Create(dest)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileCreate, "creating %s", dest)
	}

	var reader io.Reader = resp.Body
	if c.showProgress() && resp.ContentLength > 0 {
		bar, startErr := pterm.DefaultProgressbar.
			WithTotal(int(resp.ContentLength)).
			WithTitle("Downloading " + assetName).
			Start()
		if startErr == nil {
			reader = io.TeeReader(resp.Body, &progressWriter{bar: bar})
			defer func() { _, _ = bar.Stop() }()
		}
	}

	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		return "", errors.Wrapf(err, errors.ErrDownload, "writing %s", dest)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "closing %s", dest)
	}

	logger.Debug().Str("asset", assetName).Str("dest", dest).Msg("Asset downloaded")
	return dest, nil
}

func (c *Client) showProgress() bool {
	return !c.noProgress && isatty.IsTerminal(os.Stdout.Fd())
}

// progressWriter advances the bar as bytes stream through the tee
type progressWriter struct {
	bar *pterm.ProgressbarPrinter
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.bar.Add(len(p))
	return len(p), nil
}
