package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

type timeslotRepo struct {
	db dbConn
}

func newTimeslotRepo(db dbConn) contract.TimeslotRepo {
	return &timeslotRepo{db: db}
}

func (r *timeslotRepo) Create(slot *entity.Timeslot) error {
	query := `
		INSERT INTO timeslots (days, start_time, end_time, min_minutes)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		daysToCSV(slot.Days),
		slot.StartTime,
		slot.EndTime,
		slot.MinMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to create timeslot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	slot.ID = id
	return nil
}

func (r *timeslotRepo) List() ([]*entity.Timeslot, error) {
	query := `
		SELECT id, days, start_time, end_time, min_minutes, created_at
		FROM timeslots
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeslots: %w", err)
	}
	defer rows.Close()

	var slots []*entity.Timeslot
	for rows.Next() {
		slot := &entity.Timeslot{}
		var days string
		err := rows.Scan(
			&slot.ID,
			&days,
			&slot.StartTime,
			&slot.EndTime,
			&slot.MinMinutes,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeslot: %w", err)
		}
		slot.Days, err = csvToDays(days)
		if err != nil {
			return nil, fmt.Errorf("timeslot %d has corrupt days %q: %w", slot.ID, days, err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *timeslotRepo) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM timeslots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timeslot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("timeslot %d not found", id)
	}
	return nil
}

// days are stored as a comma-joined list of ISO weekday numbers, "1,3,5"
func daysToCSV(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

func csvToDays(csv string) ([]int, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
