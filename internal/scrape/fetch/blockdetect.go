package fetch

import (
	"net/http"
	"strings"
)

// BlockType describes the kind of anti-bot page detected.
type BlockType string

const (
	BlockNone       BlockType = ""
	BlockCloudflare BlockType = "cloudflare"
	BlockWAF        BlockType = "waf"
	BlockCaptcha    BlockType = "captcha"
	BlockJSShell    BlockType = "js_shell"
)

// jsShellMaxBytes bounds the body size of a page that is nothing but a
// "please enable javascript" notice. Real listing pages are far larger.
const jsShellMaxBytes = 2000

type blockMarkers struct {
	kind    BlockType
	markers []string // lowercase substrings of the body
}

// bodyMarkers is checked in order; the first hit wins.
var bodyMarkers = []blockMarkers{
	{BlockCloudflare, []string{
		"checking your browser",
		"cf-browser-verification",
		"/cdn-cgi/challenge-platform",
		"cf-turnstile",
		"just a moment...",
	}},
	// Akamai and Incapsula front most of the portals and aggregators we read.
	{BlockWAF, []string{
		"<title>access denied</title>",
		"you don't have permission to access",
		"request unsuccessful. incapsula",
		"_incapsula_resource",
	}},
	{BlockCaptcha, []string{
		"g-recaptcha",
		"h-captcha",
		"are you a robot",
		"verify you are human",
	}},
}

// DetectBlock reports whether a response looks like an anti-bot interstitial
// rather than the listing page that was asked for.
func DetectBlock(resp *http.Response, body []byte) (bool, BlockType) {
	if resp == nil {
		return false, BlockNone
	}

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable {
		switch {
		case resp.Header.Get("cf-ray") != "" || strings.EqualFold(resp.Header.Get("server"), "cloudflare"):
			return true, BlockCloudflare
		case strings.HasPrefix(strings.ToLower(resp.Header.Get("server")), "akamaighost"),
			resp.Header.Get("x-iinfo") != "":
			return true, BlockWAF
		}
	}

	lower := strings.ToLower(string(body))
	for _, bm := range bodyMarkers {
		for _, m := range bm.markers {
			if strings.Contains(lower, m) {
				return true, bm.kind
			}
		}
	}

	if len(body) < jsShellMaxBytes && strings.Contains(lower, "<noscript") && strings.Contains(lower, "enable javascript") {
		return true, BlockJSShell
	}

	return false, BlockNone
}
