// Package transform is the recursive field-level decryption engine. A Context
// carries what one traversal needs: the crypto adapter, the delegate
// identity, the retry policy for the path, the annotation side channel and
// the registry used to recurse. Handlers registered per object type decrypt
// a node's own fields and dispatch its children through the same Context.
//
// Work scheduled at one node runs concurrently and is joined with an
// all-settle combinator: a failing branch records an annotation and resolves,
// so siblings always complete.
//
//	tc := transform.NewContext(crypto, transform.DefaultRegistry(),
//	    transform.WithDelegate(user),
//	    transform.WithPolicy(retry.None()),
//	)
//	tc.DispatchActivity(ctx, key, activity, "activity")
//	annotations := tc.Annotations().List()
package transform

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/app/fanout"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/retry"
)

const defaultMaxWorkers = 16

// Invocation is one named transform scheduled during a traversal.
type Invocation struct {
	Name string
	Path domain.Path
}

// Observer is notified of every named transform a traversal schedules. The
// transforms of one node are reported in scheduling order; nodes on
// concurrent branches interleave. Observers must be safe for concurrent use.
type Observer func(Invocation)

// Context is the state of one traversal. It is not reused across
// traversals.
type Context struct {
	crypto      *Crypto
	registry    *Registry
	annotations *Annotations
	logger      *slog.Logger
	onBehalfOf  string
	policy      retry.Policy
	maxWorkers  int
	observer    Observer
	operation   string
}

// Option configures a Context.
type Option func(*Context)

// WithDelegate sets the identity decryptions are performed on behalf of.
func WithDelegate(user string) Option {
	return func(tc *Context) { tc.onBehalfOf = user }
}

// WithPolicy sets the retry policy applied to every crypto call.
func WithPolicy(p retry.Policy) Option {
	return func(tc *Context) { tc.policy = p }
}

// WithMaxWorkers bounds the branches run concurrently at one node.
func WithMaxWorkers(n int) Option {
	return func(tc *Context) {
		if n > 0 {
			tc.maxWorkers = n
		}
	}
}

// WithObserver registers an invocation observer.
func WithObserver(o Observer) Option {
	return func(tc *Context) { tc.observer = o }
}

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(tc *Context) { tc.logger = l }
}

// WithOperation names the entry point in logs and signals.
func WithOperation(op string) Option {
	return func(tc *Context) { tc.operation = op }
}

// NewContext creates the context of one traversal. Without options the
// traversal decrypts as the service identity, without retries, with up to
// 16 concurrent branches per node.
func NewContext(crypto *Crypto, registry *Registry, opts ...Option) *Context {
	tc := &Context{
		crypto:      crypto,
		registry:    registry,
		annotations: NewAnnotations(),
		policy:      retry.None(),
		maxWorkers:  defaultMaxWorkers,
	}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Annotations returns the side channel filled by this traversal.
func (tc *Context) Annotations() *Annotations {
	return tc.annotations
}

// OnBehalfOf returns the delegate identity of the traversal.
func (tc *Context) OnBehalfOf() string {
	return tc.onBehalfOf
}

// Operation returns the entry point name set with WithOperation.
func (tc *Context) Operation() string {
	return tc.operation
}

func (tc *Context) log(ctx context.Context) *slog.Logger {
	l := logging.FromContext(ctx)
	if l == slog.Default() && tc.logger != nil {
		return tc.logger
	}
	return l
}

func (tc *Context) callOptions() []CallOption {
	return []CallOption{WithOnBehalfOf(tc.onBehalfOf), WithRetry(tc.policy)}
}

// Fail records err at path with the given severity, logs it and emits an
// annotation signal. The annotation kind is derived from err.
func (tc *Context) Fail(ctx context.Context, path domain.Path, sev domain.Severity, err error) {
	tc.Annotate(ctx, domain.Annotation{
		Path:     path,
		Severity: sev,
		Kind:     domain.KindOf(err),
		Message:  err.Error(),
	})
}

// Annotate records an annotation built by the caller.
func (tc *Context) Annotate(ctx context.Context, a domain.Annotation) {
	level := slog.LevelError
	if a.Severity == domain.SeverityWarning {
		level = slog.LevelWarn
	}
	tc.log(ctx).Log(ctx, level, "transform annotation recorded",
		slog.String("operation", tc.operation),
		slog.String("path", a.Path.String()),
		slog.String("kind", string(a.Kind)),
		slog.String("error", a.Message),
	)

	tc.annotations.Add(a)
	emitAnnotation(ctx, tc.operation, a)
}

// Batch collects the branches scheduled at one node. Branch names are
// reported to the observer when scheduled, so the observed order is the
// source order; Wait runs every branch and returns once all have settled.
type Batch struct {
	tc    *Context
	tasks []task
}

type task struct {
	path domain.Path
	run  func(context.Context)
}

// Batch starts an empty batch.
func (tc *Context) Batch() *Batch {
	return &Batch{tc: tc}
}

// Go schedules fn under name. fn must record its own failures.
func (b *Batch) Go(name string, path domain.Path, fn func(context.Context)) {
	if b.tc.observer != nil {
		b.tc.observer(Invocation{Name: name, Path: path})
	}
	b.tasks = append(b.tasks, task{path: path, run: fn})
}

// Len returns the number of scheduled branches.
func (b *Batch) Len() int {
	return len(b.tasks)
}

// Wait runs all scheduled branches concurrently and blocks until each has
// settled. Branches that never started because ctx ended are annotated as
// errors at their path.
func (b *Batch) Wait(ctx context.Context) {
	if len(b.tasks) == 0 {
		return
	}

	results := fanout.Run(ctx, b.tc.maxWorkers, b.tasks, func(ctx context.Context, t task) (struct{}, error) {
		t.run(ctx)
		return struct{}{}, nil
	})

	for i, r := range results {
		if r.Err != nil {
			b.tc.Fail(ctx, b.tasks[i].path, domain.SeverityError, r.Err)
		}
	}
	b.tasks = nil
}
