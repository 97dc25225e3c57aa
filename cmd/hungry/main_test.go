package main

import (
	"testing"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildTimeslot(t *testing.T) {
	slot, err := buildTimeslot("Mon,Wed,friday", "09:00", "17:00", 60)
	require.NoError(t, err)

	assert.Equal(t, []int{domain.Monday, domain.Wednesday, domain.Friday}, slot.Days)
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "17:00", slot.EndTime)
	assert.Equal(t, 60, slot.MinMinutes)
}

func Test_buildTimeslot_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		days       string
		start, end string
		minMinutes int
	}{
		{
			name: "Should reject an unknown weekday",
			days: "Funday", start: "09:00", end: "17:00",
		},
		{
			name: "Should reject a malformed start time",
			days: "Mon", start: "9am", end: "17:00",
		},
		{
			name: "Should reject a malformed end time",
			days: "Mon", start: "09:00", end: "25:70",
		},
		{
			name: "Should reject start not before end",
			days: "Mon", start: "17:00", end: "09:00",
		},
		{
			name: "Should reject a negative minimum length",
			days: "Mon", start: "09:00", end: "17:00", minMinutes: -5,
		},
		{
			name: "Should reject a minimum length longer than the window",
			days: "Mon", start: "09:00", end: "10:00", minMinutes: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := buildTimeslot(tt.days, tt.start, tt.end, tt.minMinutes)
			assert.Error(t, err)
			assert.Nil(t, slot)
		})
	}
}
