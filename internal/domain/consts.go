package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayNumbers maps weekday names (and short names) to ISO 8601 numbers
var WeekdayNumbers = map[string]int{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// AllWeekdays is every ISO weekday, Monday through Sunday
var AllWeekdays = []int{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ISOWeekday converts a time.Time weekday (Sunday=0) to ISO 8601 (Monday=1..Sunday=7)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return Sunday
	}
	return wd
}

// Upstream shift statuses that mark a shift as still claimable
const (
	StatusPending    = "PENDING"    // offered as a swap by another courier
	StatusUnassigned = "UNASSIGNED" // published without an assignee
)
