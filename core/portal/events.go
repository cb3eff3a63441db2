package portal

import (
	"strings"

	"github.com/unidubna/portal/core/event"
	"github.com/unidubna/portal/core/user"
)

type (
	EventsContent struct {
		Filter        EventsFilterBar `json:"filter"`
		AddControl    *AddControl     `json:"add_control,omitempty"`
		DeleteControl bool            `json:"delete_control"`
		Cards         []EventCard     `json:"cards"`
	}

	EventsFilterBar struct {
		From         string   `json:"from,omitempty"`
		To           string   `json:"to,omitempty"`
		Types        []string `json:"types"`
		SelectedType string   `json:"selected_type"`
	}

	EventCard struct {
		ID          int          `json:"id"`
		Title       string       `json:"title"`
		Description string       `json:"description"`
		DateLabel   string       `json:"date_label"`
		Time        string       `json:"time,omitempty"`
		Location    string       `json:"location"`
		Type        string       `json:"type"`
		Color       string       `json:"color"`
		Icon        string       `json:"icon"`
		Action      *EventAction `json:"action,omitempty"`
	}

	EventAction struct {
		Label string `json:"label"`
		Href  string `json:"href"`
	}
)

// Event card accents keyed by substrings of the (lower-cased) type value.
var (
	eventColors = map[string]string{
		"хакатон":                "success",
		"лекция":                 "info",
		"конференция":            "primary",
		"мастер-класс":           "warning",
		"спортивное соревнование": "danger",
		"день открытых дверей":   "secondary",
	}
	eventIcons = map[string]string{
		"хакатон":                "💻",
		"лекция":                 "🎓",
		"конференция":            "🎤",
		"мастер-класс":           "🛠️",
		"спортивное соревнование": "🏆",
		"день открытых дверей":   "🚪",
	}
)

func eventAccent(eventType string) (color, icon string) {
	color, icon = "primary", "📅"
	lowered := strings.ToLower(eventType)
	for key, c := range eventColors {
		if strings.Contains(lowered, key) {
			color = c
			break
		}
	}
	for key, i := range eventIcons {
		if strings.Contains(lowered, key) {
			icon = i
			break
		}
	}
	return color, icon
}

// EventsPage lists upcoming events for the current filter, with the same
// capability gating as the news section.
func EventsPage(sess *user.Session, filter event.QueryFilter, types []string, items []event.Item, unfiltered int) Page {
	cards := make([]EventCard, 0, len(items))
	for _, it := range items {
		cards = append(cards, eventCard(it))
	}

	bar := EventsFilterBar{
		Types:        append([]string{event.TypeAll}, types...),
		SelectedType: filter.Type,
	}
	if bar.SelectedType == "" {
		bar.SelectedType = event.TypeAll
	}
	if !filter.From.IsZero() {
		bar.From = filter.From.Format("2006-01-02")
	}
	if !filter.To.IsZero() {
		bar.To = filter.To.Format("2006-01-02")
	}

	content := EventsContent{
		Filter:        bar,
		DeleteControl: sess.Can(user.CapDeleteEvents),
		Cards:         cards,
	}
	if sess.Can(user.CapEditEvents) {
		content.AddControl = &AddControl{Label: "Add event"}
	}

	p := Page{Route: RouteEvents, Title: "Events", Content: content}
	if len(cards) == 0 {
		if unfiltered == 0 {
			p.Alerts = append(p.Alerts, infoAlert("No events announced yet"))
		} else {
			p.Alerts = append(p.Alerts, infoAlert("Nothing matches the selected filters"))
		}
	}
	return chrome(p)
}

func eventCard(it event.Item) EventCard {
	color, icon := eventAccent(it.Type)
	card := EventCard{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Time:        it.Time,
		Location:    it.Location,
		Type:        it.Type,
		Color:       color,
		Icon:        icon,
	}
	if date, ok := it.StartsAt(); ok {
		card.DateLabel = date.Format("02.01.2006")
	}
	if it.IsRegistrationRequired && it.RegistrationLink != "" {
		card.Action = &EventAction{Label: "Register", Href: it.RegistrationLink}
	} else if it.RegistrationLink != "" {
		card.Action = &EventAction{Label: "Details", Href: it.RegistrationLink}
	}
	return card
}
