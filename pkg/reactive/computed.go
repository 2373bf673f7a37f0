package reactive

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ComputeFunc produces a derived value from the current dependency
// values, in dependency order.
type ComputeFunc func(values []any) (any, error)

// AsyncComputeFunc is a ComputeFunc that may block; it runs on its own
// goroutine and receives a context that is cancelled when the Computed
// is superseded by a newer trigger.
type AsyncComputeFunc func(ctx context.Context, values []any) (any, error)

// Computed is a Changeable whose value is fn applied to the current
// values of a fixed dependency list. Every dependency change triggers
// one recomputation; two dependencies changing in one synchronous
// cascade recompute twice, not once. There is no batching.
//
// If fn returns an error the Computed keeps its last good value and
// logs a warning; downstream listeners are not notified for the failed
// evaluation.
type Computed struct {
	Changeable

	deps    []Reactive
	fn      ComputeFunc
	asyncFn AsyncComputeFunc

	// gen orders asynchronous evaluations. A completion whose generation
	// is no longer current is stale and must not overwrite a newer
	// result: the latest trigger wins.
	gen    atomic.Uint64
	cancel atomic.Value // context.CancelFunc

	// completeMu serializes completions so the generation check and the
	// Set it guards are one step. Without it a stale completion could
	// pass the check, lose the CPU to a newer trigger's entire
	// evaluation, and then store its result on top of the newer one.
	completeMu sync.Mutex

	logger *slog.Logger
}

// NewComputed creates a synchronous Computed over deps, subscribes to
// every dependency, and evaluates once immediately.
func NewComputed(deps []Reactive, fn ComputeFunc) *Computed {
	c := &Computed{deps: deps, fn: fn, logger: slog.Default()}
	c.subscribe()
	c.update()
	return c
}

// NewAsyncComputed creates a Computed whose function runs on a
// goroutine per trigger. The cell's value lags until an evaluation
// completes; a completion superseded by a newer trigger is dropped.
func NewAsyncComputed(deps []Reactive, fn AsyncComputeFunc) *Computed {
	c := &Computed{deps: deps, asyncFn: fn, logger: slog.Default()}
	c.subscribe()
	c.update()
	return c
}

// WithLogger directs failure reports to l instead of slog.Default.
func (c *Computed) WithLogger(l *slog.Logger) *Computed {
	if l != nil {
		c.logger = l
	}
	return c
}

func (c *Computed) subscribe() {
	for _, dep := range c.deps {
		dep.OnChange(func(any) { c.update() })
	}
}

// values snapshots the dependency values in order.
func (c *Computed) values() []any {
	vals := make([]any, len(c.deps))
	for i, dep := range c.deps {
		vals[i] = dep.Value()
	}
	return vals
}

func (c *Computed) update() {
	vals := c.values()

	if c.asyncFn == nil {
		result, err := c.fn(vals)
		if err != nil {
			c.logger.Warn("computed evaluation failed, holding last value", "error", err)
			return
		}
		c.Set(result)
		return
	}

	gen := c.gen.Add(1)

	ctx, cancel := context.WithCancel(context.Background())
	if prev := c.cancel.Swap(context.CancelFunc(cancel)); prev != nil {
		prev.(context.CancelFunc)()
	}

	go func() {
		result, err := c.asyncFn(ctx, vals)

		c.completeMu.Lock()
		defer c.completeMu.Unlock()
		if c.gen.Load() != gen {
			// A newer trigger is in flight or already done.
			return
		}
		if err != nil {
			c.logger.Warn("computed evaluation failed, holding last value", "error", err)
			return
		}
		c.Set(result)
	}()
}
