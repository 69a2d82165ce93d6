// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache is the dashboard's query cache.
//
// Reads go through Query: an entry younger than the stale time is served
// from memory, anything else is fetched from the backend with a small retry
// budget and stored. Identical concurrent reads share one fetch.
// Mutations call Invalidate with the tags they affect, and may Patch or Set
// entries with the data the backend returned. A patched entry younger than
// the stale time is served when the re-fetch forced by the invalidation fails.
//
// Entries are scoped per user (token subject). Invalidation is by tag and
// crosses scopes, since the backend data behind a tag is shared.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/condo-dashboard/internal/adapter"
	"github.com/MKhiriev/condo-dashboard/internal/config"
	"github.com/MKhiriev/condo-dashboard/internal/logger"
)

var (
	// ErrPreconditionNotMet is returned by Query when no token is available.
	// The fetch function is not called.
	ErrPreconditionNotMet = errors.New("query precondition not met: no session token")

	// ErrTypeMismatch is returned by the generic helpers when an entry holds
	// a value of another type than requested.
	ErrTypeMismatch = errors.New("cached value has unexpected type")
)

var (
	cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_cache_requests_total",
		Help: "Query cache lookups by tag and result (hit, miss)",
	}, []string{"tag", "result"})

	cacheInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_cache_invalidations_total",
		Help: "Query cache tag invalidations",
	}, []string{"tag"})

	cacheEvictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_cache_evictions_total",
		Help: "Query cache entries evicted by size or sweep",
	})
)

// FetchFunc loads a value from the backend with the caller's token.
type FetchFunc func(ctx context.Context, token string) (any, error)

type entry struct {
	tag        string
	value      any
	fetchedAt  time.Time
	generation uint64
	patched    bool
}

// Client is the query cache. It is safe for concurrent use.
type Client struct {
	mu          sync.Mutex
	entries     *lru.Cache[string, *entry]
	generations map[string]uint64
	group       singleflight.Group

	staleTime  time.Duration
	retry      int
	retryDelay time.Duration
	now        func() time.Time
	retryable  func(error) bool
	log        *logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithRetryable replaces the retry predicate (adapter.Retryable by default).
func WithRetryable(fn func(error) bool) Option {
	return func(c *Client) {
		c.retryable = fn
	}
}

// New creates a Client holding at most cfg.Size entries.
func New(cfg config.DashboardCache, log *logger.Logger, opts ...Option) (*Client, error) {
	entries, err := lru.NewWithEvict[string, *entry](cfg.Size, func(string, *entry) {
		cacheEvictionsTotal.Inc()
	})
	if err != nil {
		return nil, fmt.Errorf("create query cache: %w", err)
	}

	c := &Client{
		entries:     entries,
		generations: make(map[string]uint64),
		staleTime:   cfg.StaleTime,
		retry:       cfg.Retry,
		retryDelay:  cfg.RetryDelay,
		now:         time.Now,
		retryable:   adapter.Retryable,
		log:         log.WithComponent("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retryDelay <= 0 {
		c.retryDelay = config.DefaultRetryDelay
	}

	return c, nil
}

// Query returns the value under (scope, key), fetching it when the entry is
// missing, stale or invalidated.
//
// A failed fetch stores nothing and leaves any previous entry in place. If
// that entry was patched by a mutation and is younger than the stale time,
// it is returned instead of the error.
// The shared fetch is not cancelled when ctx ends; only this caller stops
// waiting for it.
func (c *Client) Query(ctx context.Context, scope string, key Key, token string, fetch FetchFunc) (any, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrPreconditionNotMet
	}

	id := entryID(scope, key)

	c.mu.Lock()
	generation := c.generations[key.Tag]
	if e, ok := c.entries.Get(id); ok && c.fresh(e, generation) {
		c.mu.Unlock()
		cacheRequestsTotal.WithLabelValues(key.Tag, "hit").Inc()
		return e.value, nil
	}
	c.mu.Unlock()
	cacheRequestsTotal.WithLabelValues(key.Tag, "miss").Inc()

	// The generation is part of the flight key: a read issued after an
	// invalidation never joins a fetch started before it.
	flightKey := id + "#" + strconv.FormatUint(generation, 10)
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flightKey, func() (any, error) {
		value, err := c.fetchWithRetry(fetchCtx, key, token, fetch)
		if err != nil {
			if patched, ok := c.patchedValue(id); ok {
				c.log.Warn().Err(err).Str("key", key.String()).Msg("re-fetch failed, serving patched entry")
				return patched, nil
			}
			return nil, err
		}
		c.store(id, key.Tag, generation, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (c *Client) fetchWithRetry(ctx context.Context, key Key, token string, fetch FetchFunc) (any, error) {
	var value any
	backoff := retry.WithMaxRetries(uint64(c.retry), retry.NewConstant(c.retryDelay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		v, err := fetch(ctx, token)
		if err == nil {
			value = v
			return nil
		}
		if !c.retryable(err) {
			return err
		}
		logger.FromContext(ctx).Debug().Err(err).Str("key", key.String()).Int("attempt", attempt).Msg("query failed")
		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// store writes the fetched value unless the tag was invalidated while the
// fetch was in flight.
func (c *Client) store(id, tag string, generation uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[tag] != generation {
		return
	}
	c.entries.Add(id, &entry{tag: tag, value: value, fetchedAt: c.now(), generation: generation})
}

func (c *Client) fresh(e *entry, generation uint64) bool {
	return e.generation == generation && c.young(e)
}

func (c *Client) young(e *entry) bool {
	return c.now().Sub(e.fetchedAt) < c.staleTime
}

// patchedValue returns the value under id if a mutation patched it and it
// has not outlived the stale time, whatever its generation.
func (c *Client) patchedValue(id string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Peek(id)
	if !ok || !e.patched || !c.young(e) {
		return nil, false
	}
	return e.value, true
}

// Invalidate marks every entry under tags stale in all scopes.
func (c *Client) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		c.generations[tag]++
		cacheInvalidationsTotal.WithLabelValues(tag).Inc()
	}
	c.log.Debug().Strs("tags", tags).Msg("invalidated")
}

// Set stores value under (scope, key) as freshly fetched.
func (c *Client) Set(scope string, key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(entryID(scope, key), &entry{
		tag:        key.Tag,
		value:      value,
		fetchedAt:  c.now(),
		generation: c.generations[key.Tag],
	})
}

// peek returns the cached value under (scope, key) without fetching,
// whether fresh or not.
func (c *Client) peek(scope string, key Key) (any, bool) {
	e, ok := c.entries.Peek(entryID(scope, key))
	if !ok {
		return nil, false
	}
	return e.value, true
}

// patch applies fn to the value of every entry tagged tag and returns the
// number of entries rewritten. Age and generation are kept; the entry is
// flagged as patched.
func (c *Client) patch(tag string, fn func(any) (any, bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, id := range c.entries.Keys() {
		e, ok := c.entries.Peek(id)
		if !ok || e.tag != tag {
			continue
		}
		value, ok := fn(e.value)
		if !ok {
			continue
		}
		c.entries.Add(id, &entry{tag: e.tag, value: value, fetchedAt: e.fetchedAt, generation: e.generation, patched: true})
		n++
	}
	return n
}

// Sweep removes entries that are stale or invalidated and returns how many
// were removed. Invalidated entries that were patched are kept until they
// are stale.
func (c *Client) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, id := range c.entries.Keys() {
		e, ok := c.entries.Peek(id)
		if !ok {
			continue
		}
		if c.fresh(e, c.generations[e.tag]) || (e.patched && c.young(e)) {
			continue
		}
		c.entries.Remove(id)
		n++
	}
	return n
}

// Len returns the number of stored entries.
func (c *Client) Len() int {
	return c.entries.Len()
}

func entryID(scope string, key Key) string {
	return scope + "\x00" + key.String()
}
