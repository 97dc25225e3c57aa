package service

import (
	"testing"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

// 2024-01-01 is a Monday
func mondayShift(id int64, startHour, startMin, endHour, endMin int) *entity.Shift {
	return &entity.Shift{
		ID:     id,
		Start:  time.Date(2024, 1, 1, startHour, startMin, 0, 0, time.UTC),
		End:    time.Date(2024, 1, 1, endHour, endMin, 0, 0, time.UTC),
		Status: domain.StatusUnassigned,
	}
}

func TestContains(t *testing.T) {
	slot := &entity.Timeslot{
		Days:      []int{domain.Monday},
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	tests := []struct {
		name  string
		slot  *entity.Timeslot
		shift *entity.Shift
		want  bool
	}{
		{
			name:  "Should match a shift nested inside the window",
			slot:  slot,
			shift: mondayShift(1, 10, 0, 14, 0),
			want:  true,
		},
		{
			name:  "Should match a shift filling the window exactly",
			slot:  slot,
			shift: mondayShift(2, 9, 0, 17, 0),
			want:  true,
		},
		{
			name:  "Should not match a shift ending one minute past the window",
			slot:  slot,
			shift: mondayShift(3, 9, 0, 17, 1),
			want:  false,
		},
		{
			name:  "Should not match a shift starting before the window",
			slot:  slot,
			shift: mondayShift(4, 8, 59, 12, 0),
			want:  false,
		},
		{
			name:  "Should not match a partial overlap past the end",
			slot:  slot,
			shift: mondayShift(5, 16, 0, 18, 0),
			want:  false,
		},
		{
			name: "Should not match on the wrong weekday",
			slot: slot,
			shift: &entity.Shift{
				ID:    6,
				Start: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), // Tuesday
				End:   time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC),
			},
			want: false,
		},
		{
			name: "Should match any listed day of a multi-day slot",
			slot: &entity.Timeslot{
				Days:      []int{domain.Monday, domain.Wednesday},
				StartTime: "09:00",
				EndTime:   "17:00",
			},
			shift: &entity.Shift{
				ID:    7,
				Start: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), // Wednesday
				End:   time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
			},
			want: true,
		},
		{
			name: "Should match a Sunday shift against a Sunday slot",
			slot: &entity.Timeslot{
				Days:      []int{domain.Sunday},
				StartTime: "00:00",
				EndTime:   "23:59",
			},
			shift: &entity.Shift{
				ID:    8,
				Start: time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC), // Sunday
				End:   time.Date(2024, 1, 7, 14, 0, 0, 0, time.UTC),
			},
			want: true,
		},
		{
			name: "Should not match a shift shorter than the minimum duration",
			slot: &entity.Timeslot{
				Days:       []int{domain.Monday},
				StartTime:  "09:00",
				EndTime:    "17:00",
				MinMinutes: 120,
			},
			shift: mondayShift(9, 10, 0, 11, 0),
			want:  false,
		},
		{
			name: "Should match a shift exactly as long as the minimum duration",
			slot: &entity.Timeslot{
				Days:       []int{domain.Monday},
				StartTime:  "09:00",
				EndTime:    "17:00",
				MinMinutes: 120,
			},
			shift: mondayShift(10, 10, 0, 12, 0),
			want:  true,
		},
		{
			name: "Should not match when the slot times are malformed",
			slot: &entity.Timeslot{
				Days:      []int{domain.Monday},
				StartTime: "whenever",
				EndTime:   "17:00",
			},
			shift: mondayShift(11, 10, 0, 14, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.slot, tt.shift))
		})
	}
}

func TestMatch(t *testing.T) {
	slots := []*entity.Timeslot{
		{Days: []int{domain.Monday}, StartTime: "09:00", EndTime: "17:00"},
		{Days: []int{domain.Monday}, StartTime: "18:00", EndTime: "22:00"},
	}

	inWindow := mondayShift(1, 10, 0, 14, 0)
	tooLate := mondayShift(2, 16, 0, 18, 0)
	evening := mondayShift(3, 19, 0, 21, 0)

	got := Match(slots, []*entity.Shift{inWindow, tooLate, evening})

	// OR across slots, input order preserved
	assert.Equal(t, []*entity.Shift{inWindow, evening}, got)
}

func TestMatch_NoSlots(t *testing.T) {
	got := Match(nil, []*entity.Shift{mondayShift(1, 10, 0, 14, 0)})
	assert.Empty(t, got)
}
