package service

import (
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
)

// Contains reports whether the shift falls entirely inside the slot's
// recurring window: the shift's weekday is one of the slot's days, its clock
// interval is nested in [StartTime, EndTime], and it is at least MinMinutes
// long. Partial overlap is not a match; the courier cannot commit to a window
// they are only partially available for.
func Contains(slot *entity.Timeslot, shift *entity.Shift) bool {
	day := domain.ISOWeekday(shift.Start)
	onDay := false
	for _, d := range slot.Days {
		if d == day {
			onDay = true
			break
		}
	}
	if !onDay {
		return false
	}

	slotStart, err := parseClock(slot.StartTime)
	if err != nil {
		return false
	}
	slotEnd, err := parseClock(slot.EndTime)
	if err != nil {
		return false
	}

	if minuteOfDay(shift.Start) < slotStart || minuteOfDay(shift.End) > slotEnd {
		return false
	}

	if slot.MinMinutes > 0 && shift.End.Sub(shift.Start) < time.Duration(slot.MinMinutes)*time.Minute {
		return false
	}
	return true
}

// Match filters shifts down to those contained in at least one of the
// courier's timeslots, preserving the input order. Both sets are small, so a
// plain nested scan is all this needs.
func Match(slots []*entity.Timeslot, shifts []*entity.Shift) []*entity.Shift {
	var matched []*entity.Shift
	for _, shift := range shifts {
		for _, slot := range slots {
			if Contains(slot, shift) {
				matched = append(matched, shift)
				break
			}
		}
	}
	return matched
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
