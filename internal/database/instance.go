package database

import (
	"context"
	"fmt"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	timeslotRepo contract.TimeslotRepo
	shiftRepo    contract.ShiftRepo
	sessionRepo  contract.SessionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.timeslotRepo = newTimeslotRepo(db.conn)
	i.shiftRepo = newShiftRepo(db.conn)
	i.sessionRepo = newSessionRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		timeslotRepo: newTimeslotRepo(db),
		shiftRepo:    newShiftRepo(db),
		sessionRepo:  newSessionRepo(db),
	}
}

// Timeslot returns the timeslot repository
func (i *instance) Timeslot() contract.TimeslotRepo {
	return i.timeslotRepo
}

// Shift returns the notified-shift repository
func (i *instance) Shift() contract.ShiftRepo {
	return i.shiftRepo
}

// Session returns the session repository
func (i *instance) Session() contract.SessionRepo {
	return i.sessionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
