// Package appctx provides request-scoped context for orchestration services.
//
// RequestContext extends Go's context.Context with an in-memory memo so a
// value fetched once during a request, such as the content container of a
// report page, is not fetched again. Concurrent fetches of the same key share
// one call.
//
// A new RequestContext is created per HTTP request by the AppContext
// middleware:
//
//	rc := appctx.FromContext(ctx)
//	container, err := appctx.GetOrFetch(ctx, rc, "container:"+id, fetchContainer)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext is a request-scoped context wrapper providing memoized
// fetching. It is safe for concurrent use by the goroutines of one request
// and must not outlive it.
type RequestContext struct {
	context.Context

	mu    sync.Mutex
	cache map[string]cacheEntry
	group singleflight.Group
}

// cacheEntry stores the result of a GetOrFetch call, including any error
// other than cancellation of the fetching caller.
type cacheEntry struct {
	value any
	err   error
}

type ctxKey struct{}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// Ensure returns the RequestContext stored in ctx, creating one bound to ctx
// when there is none.
func Ensure(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn with
// ctx to fetch and cache it. ctx is the caller's context, so the fetch obeys
// the caller's deadline and cancellation rather than those of rc. Results and
// errors are cached, except context.Canceled and context.DeadlineExceeded,
// which leave the key to be fetched again. Concurrent callers asking for the
// same missing key wait for a single fetchFn call made with the first
// caller's ctx.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Use DataProvider for type-safe, reusable fetch bindings that prevent this.
func GetOrFetch[T any](ctx context.Context, rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.lookup(key); ok {
		return typed[T](key, entry)
	}

	v, _, _ := rc.group.Do(key, func() (any, error) {
		if entry, ok := rc.lookup(key); ok {
			return entry, nil
		}
		val, err := fetchFn(ctx)
		entry := cacheEntry{value: val, err: err}
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			rc.store(key, entry)
		}
		return entry, nil
	})
	return typed[T](key, v.(cacheEntry))
}

func typed[T any](key string, entry cacheEntry) (T, error) {
	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

func (rc *RequestContext) lookup(key string) (cacheEntry, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	entry, ok := rc.cache[key]
	return entry, ok
}

func (rc *RequestContext) store(key string, entry cacheEntry) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache[key] = entry
}

// Len returns the number of memoized results, failures included.
func (rc *RequestContext) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.cache)
}

// DataProvider is a type-safe wrapper around GetOrFetch for a specific data
// type. It binds a cache key and fetch function together, allowing callers
// to retrieve data without specifying the key and function each time.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it with ctx using the provider's
// fetch function.
func (p *DataProvider[T]) Get(ctx context.Context, rc *RequestContext) (T, error) {
	return GetOrFetch(ctx, rc, p.key, p.fetchFn)
}
