package contract

import (
	"context"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Timeslot() TimeslotRepo
	Shift() ShiftRepo
	Session() SessionRepo
}

// TimeslotRepo defines the contract for the availability window repository
type TimeslotRepo interface {
	Create(slot *entity.Timeslot) error
	List() ([]*entity.Timeslot, error)
	Delete(id int64) error
}

// ShiftRepo defines the contract for the notified-shift ledger backing store
type ShiftRepo interface {
	MarkNotified(shift *entity.Shift) error
	ListNotifiedIDs() ([]int64, error)
}

// SessionRepo defines the contract for the cached upstream login
type SessionRepo interface {
	Save(session *entity.Session) error
	Get() (*entity.Session, error)
}
