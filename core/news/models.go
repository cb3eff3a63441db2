package news

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/unidubna/portal/core"
)

// Categories is the fixed set offered by the news filter and form, spelled
// the way existing news files spell them.
var Categories = []string{"Учебный процесс", "Мероприятие", "Стипендия", "Важное объявление"}

// Item is one record of the news collection. The date stays a string: the
// file is hand-editable and records with missing or unparsable dates must
// survive a load (they sort last).
type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	IsImportant bool   `json:"is_important"`
	ImageURL    string `json:"image_url,omitempty"`
}

// PublishedAt parses the item date; ok is false when it is missing/unparsable.
func (it Item) PublishedAt() (time.Time, bool) {
	return core.ParseDate(it.Date)
}

// NewItem contains information needed to publish a news item.
type NewItem struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Category    string `json:"category" validate:"required"`
	IsImportant bool   `json:"is_important"`
	ImageURL    string `json:"image_url"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Title = core.CleanString(ni.Title)
	ni.Content = core.CleanString(ni.Content)
	ni.Category = core.CleanString(ni.Category)
	return validate.Struct(ni)
}

// QueryFilter narrows the news listing; zero values apply no filter.
type QueryFilter struct {
	Category      string `query:"category"`
	ImportantOnly bool   `query:"important"`
}
