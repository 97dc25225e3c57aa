package service

import (
	"fmt"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// shiftTimeLayout is the upstream listing's timestamp format: local wall time
// without an offset, interpreted in the record's own time_zone.
const shiftTimeLayout = "2006-01-02T15:04:05"

// normalizeShift converts one raw listing entry into a canonical Shift. A
// record missing its id or with unusable timestamps is rejected; the caller
// skips it and keeps processing the rest of the batch.
func normalizeShift(raw contract.RawShift) (*entity.Shift, error) {
	if raw.ShiftID == 0 {
		return nil, fmt.Errorf("shift record has no shift_id")
	}
	if raw.Start == "" || raw.End == "" {
		return nil, fmt.Errorf("shift %d has no start/end", raw.ShiftID)
	}

	loc := time.UTC
	if raw.TimeZone != "" {
		var err error
		loc, err = time.LoadLocation(raw.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("shift %d has unknown time zone %q: %w", raw.ShiftID, raw.TimeZone, err)
		}
	}

	start, err := time.ParseInLocation(shiftTimeLayout, raw.Start, loc)
	if err != nil {
		return nil, fmt.Errorf("shift %d has unparsable start %q: %w", raw.ShiftID, raw.Start, err)
	}
	end, err := time.ParseInLocation(shiftTimeLayout, raw.End, loc)
	if err != nil {
		return nil, fmt.Errorf("shift %d has unparsable end %q: %w", raw.ShiftID, raw.End, err)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("shift %d starts at or after its end", raw.ShiftID)
	}

	claimed := raw.Status != domain.StatusPending && raw.Status != domain.StatusUnassigned

	return &entity.Shift{
		ID:                raw.ShiftID,
		Start:             start,
		End:               end,
		Status:            raw.Status,
		TimeZone:          raw.TimeZone,
		StartingPointID:   raw.StartingPointID,
		StartingPointName: raw.StartingPointName,
		Claimed:           claimed,
	}, nil
}
