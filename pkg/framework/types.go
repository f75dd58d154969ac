package framework

import "context"

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Runnables collects Runnables for one Runner.
type Runnables []Runnable

// Add appends the non-nil runnables.
func (r *Runnables) Add(runnables ...Runnable) *Runnables {
	for _, runnable := range runnables {
		if runnable != nil {
			*r = append(*r, runnable)
		}
	}
	return r
}
