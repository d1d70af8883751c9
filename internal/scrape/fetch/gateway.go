// Package fetch is the single place that talks HTTP to listing sources.
// Requests go through a scraping proxy when a key is configured and
// straight to the target otherwise.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"scholarship-feed/pkg/config"
)

const (
	maxBodyBytes = 5 << 20

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// ErrBlocked is returned when a direct fetch lands on an anti-bot page.
var ErrBlocked = errors.New("fetch: blocked by anti-bot page")

// Fetcher retrieves the HTML behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (string, error)
}

// Gateway implements Fetcher with two modes, proxied and direct.
type Gateway struct {
	log           *zap.Logger
	proxyKey      string
	proxyEndpoint string
	proxied       *http.Client
	direct        *http.Client
}

// NewGateway builds a Gateway. Zero timeouts fall back to 60s proxied / 30s direct.
func NewGateway(cfg config.FetchConfig, log *zap.Logger) *Gateway {
	proxyTimeout := cfg.ProxyTimeout
	if proxyTimeout <= 0 {
		proxyTimeout = 60 * time.Second
	}
	directTimeout := cfg.DirectTimeout
	if directTimeout <= 0 {
		directTimeout = 30 * time.Second
	}
	return &Gateway{
		log:           log,
		proxyKey:      cfg.ProxyKey,
		proxyEndpoint: cfg.ProxyEndpoint,
		proxied:       &http.Client{Timeout: proxyTimeout},
		direct: &http.Client{
			Timeout: directTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Proxied reports whether requests go through the scraping proxy.
func (g *Gateway) Proxied() bool {
	return g.proxyKey != ""
}

// Fetch performs one GET. It never retries.
func (g *Gateway) Fetch(ctx context.Context, target string) (string, error) {
	if g.Proxied() {
		return g.fetchProxied(ctx, target)
	}
	return g.fetchDirect(ctx, target)
}

func (g *Gateway) fetchProxied(ctx context.Context, target string) (string, error) {
	u, err := url.Parse(g.proxyEndpoint)
	if err != nil {
		return "", eris.Wrap(err, "fetch: parse proxy endpoint")
	}
	q := u.Query()
	q.Set("api_key", g.proxyKey)
	q.Set("url", target)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", eris.Wrap(err, "fetch: create proxied request")
	}

	g.log.Debug("Fetching via proxy", zap.String("url", target))

	resp, err := g.proxied.Do(req)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: proxied request %s", target)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", eris.Wrap(err, "fetch: read proxied body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", eris.Errorf("fetch: proxy returned status %d for %s", resp.StatusCode, target)
	}
	return string(body), nil
}

func (g *Gateway) fetchDirect(ctx context.Context, target string) (string, error) {
	g.log.Warn("No scraper API key configured, fetching directly; target may block the request",
		zap.String("url", target),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", eris.Wrap(err, "fetch: create direct request")
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := g.direct.Do(req)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: direct request %s", target)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", eris.Wrap(err, "fetch: read direct body")
	}

	if blocked, kind := DetectBlock(resp, body); blocked {
		g.log.Warn("Direct fetch hit an anti-bot page",
			zap.String("url", target),
			zap.String("block", string(kind)),
			zap.Int("status", resp.StatusCode),
		)
		return "", eris.Wrapf(ErrBlocked, "fetch: %s (%s)", target, kind)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", eris.Errorf("fetch: status %d for %s", resp.StatusCode, target)
	}
	return string(body), nil
}
