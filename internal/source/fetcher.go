package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// the remote host can be slow to materialize large workbooks
const fetchTimeout = 60 * time.Second

// maximum bytes of a rejected response body echoed back in error details
const bodySampleLimit = 200

// xlsx files are zip containers
var workbookMagic = []byte{'P', 'K', 0x03, 0x04}

// ByteCache is an optional shared cache for fetched workbook bytes, so
// replicated instances reuse one download. Get returns (nil, nil) on a miss.
type ByteCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data []byte) error
}

// Fetcher downloads the source workbook and validates that the response is a
// spreadsheet binary rather than an HTML error page.
type Fetcher struct {
	url    string
	client *http.Client
	cache  ByteCache
	logger *zap.Logger
}

// NewFetcher builds a fetcher for the configured sharing URL. cache may be nil.
func NewFetcher(rawURL string, cache ByteCache, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		url:    DirectDownloadURL(rawURL),
		client: &http.Client{Timeout: fetchTimeout},
		cache:  cache,
		logger: logger,
	}
}

// Fetch returns the workbook bytes. force bypasses the shared byte cache.
func (f *Fetcher) Fetch(ctx context.Context, force bool) ([]byte, error) {
	if f.cache != nil && !force {
		if data, err := f.cache.Get(ctx); err != nil {
			f.logger.Debug("workbook byte cache read failed", zap.Error(err))
		} else if len(data) > 0 {
			return data, nil
		}
	}

	data, err := f.download(ctx)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, data); err != nil {
			f.logger.Debug("workbook byte cache write failed", zap.Error(err))
		}
	}
	return data, nil
}

func (f *Fetcher) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cacheBustedURL(), nil)
	if err != nil {
		return nil, apperrors.NewUpstreamFetchError("invalid source url", nil, err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamFetchError("source document unreachable", nil, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamFetchError("reading source document failed", nil, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamFetchError(
			fmt.Sprintf("source document download failed (%d)", resp.StatusCode),
			fetchDetails(resp.StatusCode, contentType, data), nil)
	}
	if !looksLikeWorkbook(data, contentType) {
		return nil, apperrors.NewUpstreamFetchError(
			"source document is not a spreadsheet",
			fetchDetails(resp.StatusCode, contentType, data), nil)
	}

	return data, nil
}

// cacheBustedURL appends a time-derived parameter so intermediary caches on
// the hosting side never serve a stale workbook.
func (f *Fetcher) cacheBustedURL() string {
	sep := "?"
	if strings.Contains(f.url, "?") {
		sep = "&"
	}
	return f.url + sep + "_cb=" + strconv.FormatInt(time.Now().Unix(), 10)
}

func looksLikeWorkbook(data []byte, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return false
	}
	if len(data) < len(workbookMagic) {
		return false
	}
	return string(data[:len(workbookMagic)]) == string(workbookMagic)
}

func fetchDetails(status int, contentType string, body []byte) map[string]any {
	sample := body
	if len(sample) > bodySampleLimit {
		sample = sample[:bodySampleLimit]
	}
	return map[string]any{
		"status":       status,
		"content_type": contentType,
		"body_sample":  strings.ToValidUTF8(string(sample), "."),
	}
}
