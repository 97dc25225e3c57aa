package service

import (
	"fmt"
	"log"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// ledger tracks which shift ids have already triggered a notification. The
// in-memory set is the source of truth for the current run; the repo, when
// present, warm-starts the set and makes the at-most-once guarantee survive
// separate one-shot invocations.
type ledger struct {
	seen map[int64]struct{}
	repo contract.ShiftRepo
}

func newLedger(repo contract.ShiftRepo) (*ledger, error) {
	l := &ledger{
		seen: make(map[int64]struct{}),
		repo: repo,
	}

	if repo != nil {
		ids, err := repo.ListNotifiedIDs()
		if err != nil {
			return nil, fmt.Errorf("failed to load notified shift ids: %w", err)
		}
		for _, id := range ids {
			l.seen[id] = struct{}{}
		}
	}
	return l, nil
}

// markAndCheck returns true exactly once per shift id: the first call records
// the id and returns true, every later call returns false. A write-through
// failure is logged but does not undo the in-memory mark, so the shift still
// notifies at most once within this run.
func (l *ledger) markAndCheck(shift *entity.Shift) bool {
	if _, ok := l.seen[shift.ID]; ok {
		return false
	}
	l.seen[shift.ID] = struct{}{}

	if l.repo != nil {
		if err := l.repo.MarkNotified(shift); err != nil {
			log.Printf("Failed to persist notified shift %d: %v", shift.ID, err)
		}
	}
	return true
}
