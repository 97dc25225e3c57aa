package database

import (
	"fmt"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

type shiftRepo struct {
	db dbConn
}

func newShiftRepo(db dbConn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

// MarkNotified records that the shift triggered a notification. Inserting the
// same id twice is a no-op, so a replayed mark never fails the cycle.
func (r *shiftRepo) MarkNotified(shift *entity.Shift) error {
	query := `
		INSERT OR IGNORE INTO notified_shifts (shift_id, start_at, end_at, status)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		shift.ID,
		shift.Start,
		shift.End,
		shift.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to mark shift as notified: %w", err)
	}
	return nil
}

func (r *shiftRepo) ListNotifiedIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT shift_id FROM notified_shifts`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notified shifts: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan shift id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
