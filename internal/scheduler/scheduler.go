// Package scheduler drives the polling loop: one immediate cycle, then one
// per tick. Cycles never overlap because ticks are consumed sequentially, and
// cancellation lands on cycle boundaries so a half-finished cycle is never
// abandoned mid-claim.
package scheduler

import (
	"context"
	"log"
	"time"
)

// CycleRunner executes one polling pass.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// ErrorNotifier receives cycle failures in continuous mode, best effort.
type ErrorNotifier interface {
	NotifyError(ctx context.Context, err error)
}

type Scheduler struct {
	runner   CycleRunner
	interval time.Duration

	// every cycle gets its own deadline so one stuck upstream call cannot
	// stall the loop forever
	cycleTimeout time.Duration
}

const defaultCycleTimeout = 2 * time.Minute

// New builds a scheduler. interval <= 0 means one-shot mode.
func New(runner CycleRunner, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:       runner,
		interval:     interval,
		cycleTimeout: defaultCycleTimeout,
	}
}

// Run executes the loop until ctx is canceled. In one-shot mode it returns
// the first cycle's result. In continuous mode cycle failures are logged and
// reported, never fatal; the return value is nil on clean termination.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return s.cycle()
	}

	log.Printf("Polling every %s", s.interval)
	if err := s.cycle(); err != nil {
		s.reportCycleError(err)
	}

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down")
			return nil
		case <-t.C:
			if err := s.cycle(); err != nil {
				s.reportCycleError(err)
			}
		}
	}
}

// cycle runs one pass on its own context. Deliberately not derived from the
// run context: an interrupt must take effect between cycles, not inside one.
func (s *Scheduler) cycle() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cycleTimeout)
	defer cancel()
	return s.runner.RunCycle(ctx)
}

func (s *Scheduler) reportCycleError(err error) {
	log.Printf("Cycle failed, will retry on next tick: %v", err)

	if n, ok := s.runner.(ErrorNotifier); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		n.NotifyError(ctx, err)
	}
}
