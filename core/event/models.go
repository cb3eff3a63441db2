package event

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/unidubna/portal/core"
)

// Item is one record of the events collection.
type Item struct {
	ID                     int    `json:"id"`
	Title                  string `json:"title"`
	Description            string `json:"description"`
	Date                   string `json:"date"`
	Time                   string `json:"time,omitempty"`
	Location               string `json:"location"`
	Type                   string `json:"type"`
	IsRegistrationRequired bool   `json:"is_registration_required"`
	RegistrationLink       string `json:"registration_link,omitempty"`
}

// StartsAt parses the event date; ok is false when it is missing/unparsable.
// Events without a parsable date are excluded from listings.
func (it Item) StartsAt() (time.Time, bool) {
	return core.ParseDate(it.Date)
}

// NewItem contains information needed to announce an event. Only the time
// of day is optional.
type NewItem struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Type        string `json:"type" validate:"required"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Title = core.CleanString(ni.Title)
	ni.Description = core.CleanString(ni.Description)
	ni.Location = core.CleanString(ni.Location)
	ni.Date = core.CleanString(ni.Date)
	ni.Time = core.CleanString(ni.Time)
	ni.Type = core.CleanString(ni.Type)
	return validate.Struct(ni)
}

// QueryFilter narrows the event listing. The date range only applies when
// both ends are set; TypeAll (or empty) matches every type.
type QueryFilter struct {
	From time.Time
	To   time.Time
	Type string
}

// TypeAll is the filter dropdown's "all types" option.
const TypeAll = "all"
