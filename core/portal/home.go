package portal

import (
	"fmt"
	"time"

	"github.com/unidubna/portal/core/user"
)

// motivationalPhrases rotate with the daily cat.
var motivationalPhrases = []string{
	"You can do it! 💪",
	"Great work! 🌟",
	"Keep it up! 🚀",
	"Every day is a new chance! ✨",
	"You are doing amazing! 👍",
	"Don't give up! 💫",
	"Small steps lead to big goals! 🐾",
	"You deserve a break! 😸",
	"Studying is a journey, not a destination! 📚",
	"Be proud of your progress! 🏆",
}

const catCount = 10

type (
	HomeContent struct {
		Greeting string  `json:"greeting"`
		Cat      CatCard `json:"cat"`
	}

	// CatCard is the daily cat: the picture changes once per day.
	CatCard struct {
		ImageURL      string   `json:"image_url"`
		Phrase        string   `json:"phrase"`
		MoreImageURLs []string `json:"more_image_urls"`
	}
)

// dailyCatIndex derives a stable 1..catCount index from the calendar date.
func dailyCatIndex(now time.Time) int {
	return (now.Year()*366 + now.YearDay()) % catCount
}

// HomePage is the dashboard landing section.
func HomePage(sess *user.Session, now time.Time) Page {
	idx := dailyCatIndex(now)

	more := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		more = append(more, catImageURL((idx+i)%catCount))
	}

	return chrome(Page{
		Route: RouteHome,
		Title: "Cats for your mood 🐱",
		Content: HomeContent{
			Greeting: fmt.Sprintf("Signed in as %s", sess.BaseRole),
			Cat: CatCard{
				ImageURL:      catImageURL(idx),
				Phrase:        motivationalPhrases[idx%len(motivationalPhrases)],
				MoreImageURLs: more,
			},
		},
	})
}

func catImageURL(idx int) string {
	return fmt.Sprintf("/assets/cats/cat_%d.jpg", idx+1)
}
