package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu     sync.Mutex
	calls  int
	errs   []error
	errors int
}

func (f *fakeRunner) RunCycle(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

func (f *fakeRunner) NotifyError(ctx context.Context, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors++
}

func (f *fakeRunner) snapshot() (calls, errors int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.errors
}

func TestRun_OneShot(t *testing.T) {
	r := &fakeRunner{}
	s := New(r, 0)

	err := s.Run(context.Background())
	require.NoError(t, err)

	calls, _ := r.snapshot()
	assert.Equal(t, 1, calls)
}

func TestRun_OneShotSurfacesFailure(t *testing.T) {
	r := &fakeRunner{errs: []error{fmt.Errorf("fetch failed")}}
	s := New(r, 0)

	err := s.Run(context.Background())
	assert.Error(t, err)
}

func TestRun_ContinuousSurvivesCycleFailures(t *testing.T) {
	r := &fakeRunner{errs: []error{fmt.Errorf("fetch failed")}}
	s := New(r, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// let the immediate (failing) cycle and at least one tick happen
	assert.Eventually(t, func() bool {
		calls, _ := r.snapshot()
		return calls >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done, "clean termination of a continuous run returns nil")

	_, errors := r.snapshot()
	assert.Equal(t, 1, errors, "the failing cycle must be reported through the notifier")
}

func TestRun_ContinuousStopsOnCancel(t *testing.T) {
	r := &fakeRunner{}
	s := New(r, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// the kick-off cycle runs even before the first tick
	assert.Eventually(t, func() bool {
		calls, _ := r.snapshot()
		return calls == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
