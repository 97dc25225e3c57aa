package service

import (
	"testing"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/HiImDanix/hungry-shift-helper/internal/domain/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() contract.RawShift {
	return contract.RawShift{
		ShiftID:           42,
		Start:             "2024-01-01T10:00:00",
		End:               "2024-01-01T14:00:00",
		Status:            domain.StatusUnassigned,
		TimeZone:          "Europe/Copenhagen",
		StartingPointID:   7,
		StartingPointName: "Copenhagen Central",
	}
}

func Test_normalizeShift(t *testing.T) {
	raw := validRaw()

	shift, err := normalizeShift(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(42), shift.ID)
	assert.Equal(t, domain.StatusUnassigned, shift.Status)
	assert.Equal(t, int64(7), shift.StartingPointID)
	assert.False(t, shift.Claimed)

	loc, err := time.LoadLocation("Europe/Copenhagen")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, loc), shift.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 14, 0, 0, 0, loc), shift.End)
}

func Test_normalizeShift_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw *contract.RawShift)
	}{
		{
			name:   "Should fail when shift_id is missing",
			mutate: func(raw *contract.RawShift) { raw.ShiftID = 0 },
		},
		{
			name:   "Should fail when start is missing",
			mutate: func(raw *contract.RawShift) { raw.Start = "" },
		},
		{
			name:   "Should fail when end is missing",
			mutate: func(raw *contract.RawShift) { raw.End = "" },
		},
		{
			name:   "Should fail when start is unparsable",
			mutate: func(raw *contract.RawShift) { raw.Start = "today-ish" },
		},
		{
			name:   "Should fail when the time zone is unknown",
			mutate: func(raw *contract.RawShift) { raw.TimeZone = "Mars/Olympus_Mons" },
		},
		{
			name: "Should fail when start is not before end",
			mutate: func(raw *contract.RawShift) {
				raw.Start = "2024-01-01T14:00:00"
				raw.End = "2024-01-01T10:00:00"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			shift, err := normalizeShift(raw)
			assert.Error(t, err)
			assert.Nil(t, shift)
		})
	}
}

func Test_normalizeShift_ClaimedStatus(t *testing.T) {
	raw := validRaw()
	raw.Status = "ASSIGNED"

	shift, err := normalizeShift(raw)
	require.NoError(t, err)
	assert.True(t, shift.Claimed)
}

func Test_normalizeShift_DefaultsToUTC(t *testing.T) {
	raw := validRaw()
	raw.TimeZone = ""

	shift, err := normalizeShift(raw)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), shift.Start)
}
