// Package cache holds the single shared mutable resource of the service: the
// most recently fetched roster document and its fetch timestamp.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/driver-registry/internal/sheet"
)

// FetchFunc downloads the raw workbook bytes. force bypasses any shared
// byte-cache tier beneath it.
type FetchFunc func(ctx context.Context, force bool) ([]byte, error)

type entry struct {
	data      []byte
	doc       *sheet.Document
	fetchedAt time.Time
}

// DocumentCache serves a parsed document within a TTL window, refetching
// beyond it. Concurrent refreshes are collapsed into one upstream fetch; a
// failed refresh serves the last-known-good document when one exists.
type DocumentCache struct {
	fetch     FetchFunc
	ttl       time.Duration
	sheetName string
	headerRow int
	logger    *zap.Logger
	now       func() time.Time

	mu      sync.RWMutex
	current *entry

	group singleflight.Group
}

// New builds an empty cache around the fetch function and default parse
// parameters.
func New(fetch FetchFunc, ttl time.Duration, sheetName string, headerRow int, logger *zap.Logger) *DocumentCache {
	return &DocumentCache{
		fetch:     fetch,
		ttl:       ttl,
		sheetName: sheetName,
		headerRow: headerRow,
		logger:    logger,
		now:       time.Now,
	}
}

// Document returns a document parsed with the given parameters; zero values
// mean the configured defaults. Non-default parameters are re-parsed from the
// cached bytes and never trigger an extra fetch of their own.
func (c *DocumentCache) Document(sheetName string, headerRow int, force bool) (*sheet.Document, error) {
	if sheetName == "" {
		sheetName = c.sheetName
	}
	if headerRow <= 0 {
		headerRow = c.headerRow
	}

	cur := c.snapshot()
	if cur == nil || force || c.now().Sub(cur.fetchedAt) >= c.ttl {
		refreshed, err := c.refresh(force)
		if err != nil {
			if cur == nil {
				return nil, err
			}
			c.logger.Warn("serving stale document after refresh failure",
				zap.Time("fetched_at", cur.fetchedAt), zap.Error(err))
		} else {
			cur = refreshed
		}
	}

	if sheetName == c.sheetName && headerRow == c.headerRow {
		return cur.doc, nil
	}
	return sheet.Parse(cur.data, sheetName, headerRow)
}

// Age reports how old the cached document is; ok is false while the cache is
// still empty.
func (c *DocumentCache) Age() (time.Duration, bool) {
	cur := c.snapshot()
	if cur == nil {
		return 0, false
	}
	return c.now().Sub(cur.fetchedAt), true
}

func (c *DocumentCache) snapshot() *entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *DocumentCache) refresh(force bool) (*entry, error) {
	v, err, _ := c.group.Do("refresh", func() (interface{}, error) {
		// a refresh may have completed while this caller waited on the flight
		if cur := c.snapshot(); cur != nil && !force && c.now().Sub(cur.fetchedAt) < c.ttl {
			return cur, nil
		}

		// detached from any single request: a caller timing out mid-fetch
		// must not cancel the download other requests are waiting on
		data, err := c.fetch(context.Background(), force)
		if err != nil {
			return nil, err
		}
		doc, err := sheet.Parse(data, c.sheetName, c.headerRow)
		if err != nil {
			return nil, err
		}

		e := &entry{data: data, doc: doc, fetchedAt: c.now()}
		c.mu.Lock()
		c.current = e
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entry), nil
}
