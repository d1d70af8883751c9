package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"scholarship-feed/pkg/config"
)

func TestGateway_DirectSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("<html><body><h1>Scholarships</h1></body></html>"))
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	g := NewGateway(config.FetchConfig{}, zap.New(core))

	html, err := g.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "Scholarships")
	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Contains(t, gotAccept, "text/html")
	assert.False(t, g.Proxied())
	assert.Equal(t, 1, logs.FilterMessageSnippet("fetching directly").Len())
}

func TestGateway_ProxiedPassesTargetAndKey(t *testing.T) {
	var gotKey, gotURL string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotURL = r.URL.Query().Get("url")
		_, _ = w.Write([]byte("<html>proxied</html>"))
	}))
	defer proxy.Close()

	core, logs := observer.New(zap.WarnLevel)
	g := NewGateway(config.FetchConfig{ProxyKey: "k-123", ProxyEndpoint: proxy.URL + "/"}, zap.New(core))

	html, err := g.Fetch(context.Background(), "https://example.org/scholarships?page=1")
	require.NoError(t, err)
	assert.Equal(t, "<html>proxied</html>", html)
	assert.Equal(t, "k-123", gotKey)
	assert.Equal(t, "https://example.org/scholarships?page=1", gotURL)
	assert.True(t, g.Proxied())
	assert.Zero(t, logs.Len(), "proxied mode must not warn about direct fetching")
}

func TestGateway_Timeouts(t *testing.T) {
	g := NewGateway(config.FetchConfig{}, zap.NewNop())
	assert.Equal(t, 60*time.Second, g.proxied.Timeout)
	assert.Equal(t, 30*time.Second, g.direct.Timeout)
}

func TestGateway_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	g := NewGateway(config.FetchConfig{}, zap.NewNop())
	_, err := g.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGateway_ProxyNon2xxIsError(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer proxy.Close()

	g := NewGateway(config.FetchConfig{ProxyKey: "bad", ProxyEndpoint: proxy.URL}, zap.NewNop())
	_, err := g.Fetch(context.Background(), "https://example.org")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGateway_BlockedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cf-Ray", "8a1b2c")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("<html>Just a moment...</html>"))
	}))
	defer srv.Close()

	g := NewGateway(config.FetchConfig{}, zap.NewNop())
	_, err := g.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlocked))
}

func TestGateway_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	g := NewGateway(config.FetchConfig{}, zap.NewNop())
	_, err := g.Fetch(context.Background(), target)
	assert.Error(t, err)
}

func TestDetectBlock(t *testing.T) {
	tests := []struct {
		name string
		resp *http.Response
		body string
		want BlockType
	}{
		{"nil response", nil, "", BlockNone},
		{"clean", &http.Response{StatusCode: 200, Header: http.Header{}}, "<html>Scholarships for 2025</html>", BlockNone},
		{"cloudflare header", &http.Response{StatusCode: 503, Header: http.Header{"Server": {"cloudflare"}}}, "", BlockCloudflare},
		{"challenge text", &http.Response{StatusCode: 200, Header: http.Header{}}, "Checking your browser before accessing", BlockCloudflare},
		{"captcha", &http.Response{StatusCode: 200, Header: http.Header{}}, `<div class="g-recaptcha"></div>`, BlockCaptcha},
		{"js shell", &http.Response{StatusCode: 200, Header: http.Header{}}, "<noscript>Please enable JavaScript</noscript>", BlockJSShell},
		{"turnstile", &http.Response{StatusCode: 200, Header: http.Header{}}, `<div class="cf-turnstile"></div>`, BlockCloudflare},
		{"akamai header", &http.Response{StatusCode: 403, Header: http.Header{"Server": {"AkamaiGHost"}}}, "", BlockWAF},
		{"akamai page", &http.Response{StatusCode: 200, Header: http.Header{}}, "<HTML><HEAD><TITLE>Access Denied</TITLE></HEAD></HTML>", BlockWAF},
		{"incapsula page", &http.Response{StatusCode: 200, Header: http.Header{}}, "Request unsuccessful. Incapsula incident ID: 123", BlockWAF},
		{"akamai header on 200", &http.Response{StatusCode: 200, Header: http.Header{"Server": {"AkamaiGHost"}}}, "<html>Scholarships</html>", BlockNone},
		{"large page mentioning javascript", &http.Response{StatusCode: 200, Header: http.Header{}}, "<noscript>enable javascript</noscript>" + strings.Repeat("<div>card</div>", 200), BlockNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := DetectBlock(tt.resp, []byte(tt.body))
			assert.Equal(t, tt.want, got)
		})
	}
}
