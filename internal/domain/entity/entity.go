package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/HiImDanix/hungry-shift-helper/internal/domain"
)

// Shift is one work opportunity from the upstream listing. Identity is the
// upstream shift id; Start/End carry the shift's own time zone. Claimed only
// ever advances from false to true within a run.
type Shift struct {
	ID                int64
	Start             time.Time
	End               time.Time
	Status            string
	TimeZone          string
	StartingPointID   int64
	StartingPointName string
	Claimed           bool
}

// Open reports whether the shift can still be claimed according to upstream.
func (s *Shift) Open() bool {
	return !s.Claimed && (s.Status == domain.StatusPending || s.Status == domain.StatusUnassigned)
}

// String renders like "February 4 from 14:00-16:00 (2h 0m)", assuming start
// and end fall on the same day.
func (s *Shift) String() string {
	d := s.End.Sub(s.Start)
	return fmt.Sprintf("%s %d from %s-%s (%dh %dm)",
		s.Start.Month().String(),
		s.Start.Day(),
		s.Start.Format("15:04"),
		s.End.Format("15:04"),
		int(d.Hours()),
		int(d.Minutes())%60,
	)
}

// Timeslot is a recurring weekly availability window configured by the
// courier. Days holds ISO weekday numbers (Monday=1..Sunday=7); StartTime and
// EndTime are "HH:MM" clock times with StartTime < EndTime. MinMinutes is the
// shortest shift duration worth taking; zero disables the check.
type Timeslot struct {
	ID         int64
	Days       []int
	StartTime  string
	EndTime    string
	MinMinutes int
	CreatedAt  time.Time
}

// String renders like "09:00-17:00 every Monday, Wednesday (min 60m)".
func (t *Timeslot) String() string {
	names := make([]string, 0, len(t.Days))
	for _, d := range t.Days {
		names = append(names, domain.WeekdayNames[d])
	}
	s := fmt.Sprintf("%s-%s every %s", t.StartTime, t.EndTime, strings.Join(names, ", "))
	if t.MinMinutes > 0 {
		s += fmt.Sprintf(" (min %dm)", t.MinMinutes)
	}
	return s
}

// Session is a cached upstream login: bearer token plus the city id the
// account belongs to. Persisted so one-shot invocations reuse the token.
type Session struct {
	Token     string
	ExpiresAt time.Time
	CityID    int64
}

// Valid reports whether the token can still be used at the given instant.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Token != "" && now.Before(s.ExpiresAt)
}

// ClaimOutcome classifies one claim attempt. Losing the race is an expected
// result, not an error.
type ClaimOutcome int

const (
	OutcomeClaimed ClaimOutcome = iota
	OutcomeLostRace
	OutcomeTransientFailure
)

func (o ClaimOutcome) String() string {
	switch o {
	case OutcomeClaimed:
		return "claimed"
	case OutcomeLostRace:
		return "lost race"
	case OutcomeTransientFailure:
		return "transient failure"
	default:
		return fmt.Sprintf("unknown outcome %d", int(o))
	}
}

// Terminal reports whether the outcome decides the shift for good. Only
// transient failures are worth retrying on a later cycle.
func (o ClaimOutcome) Terminal() bool {
	return o == OutcomeClaimed || o == OutcomeLostRace
}

// ClaimAttempt is the result of one claim call for one shift.
type ClaimAttempt struct {
	ShiftID int64
	Outcome ClaimOutcome
	At      time.Time
}
