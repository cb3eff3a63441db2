package portal

import (
	"time"

	"github.com/unidubna/portal/core/schedule"
	"github.com/unidubna/portal/core/user"
)

type (
	ScheduleContent struct {
		Date      string       `json:"date"`
		DayLabel  string       `json:"day_label"`
		WeekLabel string       `json:"week_label"`
		Lessons   []LessonCard `json:"lessons"`
		PrevDay   string       `json:"prev_day"`
		NextDay   string       `json:"next_day"`
	}

	LessonCard struct {
		PairNumber int    `json:"pair_number"`
		Subject    string `json:"subject"`
		TimeStart  string `json:"time_start"`
		TimeEnd    string `json:"time_end"`
		ClassType  string `json:"class_type"`
		Lecturer   string `json:"lecturer,omitempty"`
		Classroom  string `json:"classroom,omitempty"`
	}
)

var weekLabels = map[schedule.Parity]string{
	schedule.ParityOdd:  "Odd week",
	schedule.ParityEven: "Even week",
}

// SchedulePage lists the lessons of one date, ordered by pair number.
func SchedulePage(sess *user.Session, date time.Time, lessons []schedule.Entry) Page {
	dayName, parity := schedule.DayInfo(date)

	cards := make([]LessonCard, 0, len(lessons))
	for _, e := range lessons {
		cards = append(cards, LessonCard{
			PairNumber: e.PairNumber,
			Subject:    e.Subject,
			TimeStart:  e.TimeStart,
			TimeEnd:    e.TimeEnd,
			ClassType:  e.ClassType,
			Lecturer:   e.Lecturer,
			Classroom:  e.Classroom,
		})
	}

	p := Page{
		Route: RouteSchedule,
		Title: "Schedule",
		Content: ScheduleContent{
			Date:      date.Format("2006-01-02"),
			DayLabel:  dayName,
			WeekLabel: weekLabels[parity],
			Lessons:   cards,
			PrevDay:   date.AddDate(0, 0, -1).Format("2006-01-02"),
			NextDay:   date.AddDate(0, 0, 1).Format("2006-01-02"),
		},
	}
	if len(cards) == 0 {
		p.Alerts = append(p.Alerts, infoAlert("No classes on this day 🎉"))
	}
	return chrome(p)
}
