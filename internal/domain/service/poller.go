package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// pollerService drives one polling cycle: fetch the raw listing, normalize
// it, match against the courier's timeslots, gate through the notified-shift
// ledger, notify, and optionally auto-take.
type pollerService struct {
	source   contract.ShiftSource
	notifier contract.Notifier
	ledger   *ledger
	claimer  *claimCoordinator
	slots    []*entity.Timeslot
	autoTake bool
	debug    bool
}

// RunCycle executes one full pass. Only a fetch failure aborts the cycle;
// malformed records and notify errors are logged and skipped, and the ledger
// is never touched before a successful fetch.
func (p *pollerService) RunCycle(ctx context.Context) error {
	raws, err := p.source.FetchShifts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch shifts: %w", err)
	}
	p.debugf("Fetched %d raw shift records", len(raws))

	shifts := make([]*entity.Shift, 0, len(raws))
	for _, raw := range raws {
		shift, err := normalizeShift(raw)
		if err != nil {
			log.Printf("Skipping malformed shift record: %v", err)
			continue
		}
		shifts = append(shifts, shift)
	}

	matched := Match(p.slots, shifts)
	p.debugf("%d of %d shifts match the configured timeslots", len(matched), len(shifts))

	var fresh []*entity.Shift
	for _, shift := range matched {
		if p.ledger.markAndCheck(shift) {
			fresh = append(fresh, shift)
		}
	}

	if p.autoTake {
		for _, shift := range matched {
			if shift.Claimed {
				continue
			}
			attempt := p.claimer.attempt(ctx, shift)
			log.Printf("Claim attempt for shift %d: %s", shift.ID, attempt.Outcome)
		}
	}

	if len(fresh) > 0 {
		p.notifyShifts(ctx, fresh)
	} else {
		p.debugf("No new shifts this cycle")
	}
	return nil
}

// NotifyError pushes a cycle failure through the notifier, best effort. Used
// by the run loop in continuous mode so the courier hears about persistent
// breakage without the process dying.
func (p *pollerService) NotifyError(ctx context.Context, cycleErr error) {
	if err := p.notifier.Notify(ctx, "Hungry-Shift-Helper error", cycleErr.Error()); err != nil {
		log.Printf("Could not send error notification: %v", err)
	}
}

func (p *pollerService) notifyShifts(ctx context.Context, shifts []*entity.Shift) {
	verb := "found"
	if p.autoTake {
		verb = "procured"
	}
	title := fmt.Sprintf("%d new shifts were %s", len(shifts), verb)

	lines := make([]string, 0, len(shifts))
	for _, s := range shifts {
		lines = append(lines, s.String())
	}

	// A missed notification is not fatal to the polling loop.
	if err := p.notifier.Notify(ctx, title, strings.Join(lines, "\n")); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

func (p *pollerService) debugf(format string, args ...any) {
	if p.debug {
		log.Printf(format, args...)
	}
}
