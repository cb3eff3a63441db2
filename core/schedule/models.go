package schedule

import "time"

// Week parity tags carried by schedule entries.
type Parity string

const (
	ParityOdd    Parity = "odd"
	ParityEven   Parity = "even"
	ParityAlways Parity = "always"
)

// Entry is one lesson of the static term schedule. Day names are stored the
// way the schedule file spells them (lower-case russian).
type Entry struct {
	DayOfWeek  string `json:"day_of_week"`
	WeekParity Parity `json:"week_parity"`
	PairNumber int    `json:"pair_number"`
	Subject    string `json:"subject"`
	TimeStart  string `json:"time_start"`
	TimeEnd    string `json:"time_end"`
	ClassType  string `json:"class_type"`
	Lecturer   string `json:"lecturer,omitempty"`
	Classroom  string `json:"classroom,omitempty"`
}

// matchesDay reports whether the entry applies on the given weekday/parity.
func (e Entry) matchesDay(dayName string, parity Parity) bool {
	return e.DayOfWeek == dayName && (e.WeekParity == parity || e.WeekParity == ParityAlways)
}

var dayNames = map[time.Weekday]string{
	time.Monday:    "понедельник",
	time.Tuesday:   "вторник",
	time.Wednesday: "среда",
	time.Thursday:  "четверг",
	time.Friday:    "пятница",
	time.Saturday:  "суббота",
	time.Sunday:    "воскресенье",
}

// DayInfo derives the schedule-file day name and ISO-week parity for a date.
func DayInfo(date time.Time) (dayName string, parity Parity) {
	_, week := date.ISOWeek()
	parity = ParityEven
	if week%2 != 0 {
		parity = ParityOdd
	}
	return dayNames[date.Weekday()], parity
}
