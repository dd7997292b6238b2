// Package cache keeps recently built dashboard reports in memory.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"smebig-warroom/internal/analytics/core/domain"
	"smebig-warroom/internal/analytics/core/ports"
)

type entryKey struct {
	client string
	key    string
}

type entry struct {
	report  *domain.Report
	expires time.Time
}

// DefaultLoadTimeout bounds a shared load once it no longer follows the
// caller's context.
const DefaultLoadTimeout = 30 * time.Second

// ReportCache is a size-bounded LRU with a per-entry TTL. Concurrent misses
// for the same entry share a single load.
//
// Each client has a generation that Invalidate bumps. A load started under an
// older generation still answers its callers but is never stored.
type ReportCache struct {
	lru         *lru.Cache
	ttl         time.Duration
	loadTimeout time.Duration
	group       singleflight.Group
	now         func() time.Time

	mu   sync.Mutex
	gens map[string]uint64
}

var _ ports.ReportCachePort = (*ReportCache)(nil)

func NewReportCache(size int, ttl time.Duration) (*ReportCache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	return &ReportCache{
		lru:         l,
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
		now:         time.Now,
		gens:        make(map[string]uint64),
	}, nil
}

func (c *ReportCache) generation(clientName string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[clientName]
}

// store adds the entry unless the client was invalidated since gen was read.
func (c *ReportCache) store(k entryKey, gen uint64, r *domain.Report) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[k.client] != gen {
		return false
	}
	c.lru.Add(k, entry{report: r, expires: c.now().Add(c.ttl)})
	return true
}

// GetOrLoad returns the cached report or runs load once for all concurrent
// callers. The load runs detached from any single caller's cancellation,
// bounded by loadTimeout; a caller whose ctx ends stops waiting with ctx.Err().
func (c *ReportCache) GetOrLoad(ctx context.Context, clientName, key string, load ports.ReportLoader) (*domain.Report, error) {
	k := entryKey{client: clientName, key: key}
	if r, ok := c.get(k); ok {
		return r, nil
	}

	gen := c.generation(clientName)
	flight := clientName + "\x00" + key + "\x00" + strconv.FormatUint(gen, 10)
	ch := c.group.DoChan(flight, func() (interface{}, error) {
		if r, ok := c.get(k); ok {
			return r, nil
		}
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		r, err := load(lctx)
		if err != nil {
			return nil, err
		}
		if !c.store(k, gen, r) {
			log.WithFields(log.Fields{"component": "report_cache", "client": clientName}).
				Debug("report built before invalidation, not cached")
		}
		return r, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.WithFields(log.Fields{"component": "report_cache", "client": clientName}).Debug("shared report load")
		}
		return res.Val.(*domain.Report), nil
	}
}

func (c *ReportCache) get(k entryKey) (*domain.Report, bool) {
	v, ok := c.lru.Get(k)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if c.ttl > 0 && !c.now().Before(e.expires) {
		c.lru.Remove(k)
		return nil, false
	}
	return e.report, true
}

// Invalidate drops the client's entries and keeps loads already in flight
// from storing what they read.
func (c *ReportCache) Invalidate(clientName string) {
	c.mu.Lock()
	c.gens[clientName]++
	c.mu.Unlock()

	removed := 0
	for _, k := range c.lru.Keys() {
		if ek, ok := k.(entryKey); ok && ek.client == clientName {
			c.lru.Remove(k)
			removed++
		}
	}
	log.WithFields(log.Fields{
		"component": "report_cache",
		"client":    clientName,
		"removed":   removed,
	}).Info("dashboard cache invalidated")
}

// Purge drops everything.
func (c *ReportCache) Purge() {
	c.lru.Purge()
}

func (c *ReportCache) Len() int {
	return c.lru.Len()
}
