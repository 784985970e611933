package fetcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/premake/premake-testbin/log"
)

// downloadClient returns a client sharing base's transport that drops the
// Authorization header whenever a redirect leaves the original host.
func downloadClient(base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	c := *base
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		if req.URL.Host != via[0].URL.Host {
			req.Header.Del("Authorization")
		}
		return nil
	}
	return &c
}

// download writes url to path and returns the sha256 of the content and
// its size. A non-empty token is sent to the first host only.
func download(ctx context.Context, client *http.Client, token, url, path string) (string, int64, error) {
	log.G(ctx).Debugf("Downloading: %s to %s", url, path)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/octet-stream")
	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, errors.Wrapf(err, "downloading %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", 0, errors.Errorf("downloading %s: %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", 0, err
	}
	out, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	defer out.Close()

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(out, h), resp.Body)
	if err != nil {
		return "", 0, errors.Wrapf(err, "writing %s", path)
	}
	if err := out.Close(); err != nil {
		return "", 0, err
	}
	log.G(ctx).Debugf("Downloaded %s (%s)", path, humanize.Bytes(uint64(n)))
	return fmt.Sprintf("%x", h.Sum(nil)), n, nil
}
