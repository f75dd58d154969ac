package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestRunnerAggregatesErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	err := NewRunner().Go(
		RunFunc(func(context.Context) error { return errA }),
		NamedRun("b", RunFunc(func(context.Context) error { return errB })),
		RunFunc(func(context.Context) error { return nil }),
	).Wait()
	require.Error(t, err)
	agg, ok := err.(*AggregatedError)
	require.True(t, ok)
	require.ElementsMatch(t, []error{errA, errB}, agg.Errors)
}

func TestRunnerIgnoresCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunnerWith(ctx).Go(RunFunc(blockUntilDone), RunFunc(blockUntilDone))
	cancel()
	require.NoError(t, r.Wait())
}

func TestRunnerGrace(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)
	r := NewRunnerWith(ctx).WithGrace(50 * time.Millisecond).Go(
		RunFunc(blockUntilDone),
		RunFunc(func(context.Context) error {
			<-release
			return nil
		}),
	)
	cancel()
	start := time.Now()
	err := r.Wait()
	require.Error(t, err)
	require.Contains(t, err.Error(), ErrShutdownTimeout.Error())
	require.True(t, time.Since(start) < time.Second)
}

type fakeCloser struct {
	closed int
	ch     chan struct{}
}

func (c *fakeCloser) Close() error {
	if c.closed++; c.closed == 1 {
		close(c.ch)
	}
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	closer := &fakeCloser{ch: make(chan struct{})}
	require.NoError(t, RunWithContextCloser(context.Background(), closer, func() error { return nil }))
	require.Equal(t, 1, closer.closed)

	closer = &fakeCloser{ch: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunWithContextCloser(ctx, closer, func() error {
		<-closer.ch
		return errors.New("closed")
	})
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 1, closer.closed)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errors.New("x"))
	require.Equal(t, "x", errs.Error())
	errs.Add(errors.New("y"))
	require.Equal(t, "multiple errors: x; y", errs.Aggregate().Error())

	var runnables Runnables
	runnables.Add(nil, RunFunc(blockUntilDone))
	require.Len(t, runnables, 1)
}
