package source

import (
	"net/url"
	"strings"
)

// DirectDownloadURL rewrites a sharing-style link into a direct-download URL
// for the known hosting providers. Unknown hosts pass through untouched apart
// from scheme normalization. The rewrite is idempotent and performs no
// network access.
func DirectDownloadURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	host := strings.ToLower(parsed.Hostname())
	switch {
	case strings.Contains(host, "sharepoint.com"):
		q := parsed.Query()
		// the share UI emits web=1; download=1 is the binary equivalent
		q.Del("web")
		q.Set("download", "1")
		parsed.RawQuery = q.Encode()
	case strings.Contains(host, "1drv.ms"), strings.Contains(host, "onedrive.live.com"):
		parsed.Path = strings.ReplaceAll(parsed.Path, "/redir", "/download")
		parsed.Path = strings.ReplaceAll(parsed.Path, "view.aspx", "download.aspx")
		q := parsed.Query()
		q.Set("download", "1")
		parsed.RawQuery = q.Encode()
	}

	return parsed.String()
}
