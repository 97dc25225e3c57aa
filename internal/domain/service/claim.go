package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// claimCoordinator turns the racy external claim call into a tri-state
// outcome. Claimed and LostRace are terminal and remembered per shift id for
// the life of the run; transient failures stay undecided so a later cycle can
// try again while the shift is still open.
type claimCoordinator struct {
	sink    contract.ClaimSink
	decided map[int64]entity.ClaimOutcome
}

func newClaimCoordinator(sink contract.ClaimSink) *claimCoordinator {
	return &claimCoordinator{
		sink:    sink,
		decided: make(map[int64]entity.ClaimOutcome),
	}
}

// attempt submits one claim for the shift and classifies the result. Calling
// it again for an already-decided shift returns the recorded outcome without
// touching the network.
func (c *claimCoordinator) attempt(ctx context.Context, shift *entity.Shift) entity.ClaimAttempt {
	if outcome, ok := c.decided[shift.ID]; ok {
		return entity.ClaimAttempt{ShiftID: shift.ID, Outcome: outcome, At: time.Now()}
	}

	err := c.sink.SubmitClaim(ctx, shift)

	var outcome entity.ClaimOutcome
	switch {
	case err == nil:
		outcome = entity.OutcomeClaimed
		shift.Claimed = true
	case errors.Is(err, domain.ErrShiftTaken):
		// Another courier got there first. Expected, not an error.
		outcome = entity.OutcomeLostRace
		shift.Claimed = true
		log.Printf("Lost the race for shift %d: %v", shift.ID, err)
	default:
		outcome = entity.OutcomeTransientFailure
		log.Printf("Claim attempt for shift %d failed, will retry next cycle: %v", shift.ID, err)
	}

	if outcome.Terminal() {
		c.decided[shift.ID] = outcome
	}

	return entity.ClaimAttempt{ShiftID: shift.ID, Outcome: outcome, At: time.Now()}
}
