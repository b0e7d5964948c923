package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

var workbookBytes = []byte("PK\x03\x04fake-workbook-payload")

type memByteCache struct {
	data []byte
	sets int
}

func (m *memByteCache) Get(context.Context) ([]byte, error) { return m.data, nil }
func (m *memByteCache) Set(_ context.Context, data []byte) error {
	m.data = data
	m.sets++
	return nil
}

func TestFetchDownloadsAndValidates(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.NotEmpty(t, r.URL.Query().Get("_cb"))
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		_, _ = w.Write(workbookBytes)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, nil, zap.NewNop())
	data, err := f.Fetch(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, workbookBytes, data)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, nil, zap.NewNop())
	_, err := f.Fetch(context.Background(), false)

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "UPSTREAM_FETCH_FAILED", de.Code)
	assert.Equal(t, http.StatusNotFound, de.Details["status"])
}

func TestFetchRejectsHTMLErrorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>sign in required</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, nil, zap.NewNop())
	_, err := f.Fetch(context.Background(), false)

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "UPSTREAM_FETCH_FAILED", de.Code)
	assert.Contains(t, de.Details["body_sample"], "sign in required")
}

func TestFetchServesFromByteCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write(workbookBytes)
	}))
	defer srv.Close()

	cache := &memByteCache{data: workbookBytes}
	f := NewFetcher(srv.URL, cache, zap.NewNop())

	data, err := f.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, workbookBytes, data)
	assert.Equal(t, int32(0), hits.Load(), "cached bytes should avoid the network")

	// force bypasses the byte cache and rewrites it
	_, err = f.Fetch(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 1, cache.sets)
}
