package portal

import (
	"github.com/unidubna/portal/core/news"
	"github.com/unidubna/portal/core/user"
)

type (
	NewsContent struct {
		Filter        NewsFilterBar `json:"filter"`
		AddControl    *AddControl   `json:"add_control,omitempty"`
		DeleteControl bool          `json:"delete_control"`
		Cards         []NewsCard    `json:"cards"`
	}

	NewsFilterBar struct {
		Categories       []string `json:"categories"`
		SelectedCategory string   `json:"selected_category,omitempty"`
		ImportantOnly    bool     `json:"important_only"`
	}

	// AddControl describes the "new record" form for holders of an edit
	// capability; its option list feeds the form's dropdown.
	AddControl struct {
		Label   string   `json:"label"`
		Options []string `json:"options,omitempty"`
	}

	NewsCard struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Content     string `json:"content"`
		DateLabel   string `json:"date_label,omitempty"`
		Category    string `json:"category"`
		IsImportant bool   `json:"is_important"`
		Color       string `json:"color"`
		ImageURL    string `json:"image_url,omitempty"`
	}
)

// NewsPage lists published news for the current filter. Editing controls
// only appear for sessions holding the matching capability.
func NewsPage(sess *user.Session, filter news.QueryFilter, items []news.Item, unfiltered int) Page {
	cards := make([]NewsCard, 0, len(items))
	for _, it := range items {
		cards = append(cards, newsCard(it))
	}

	content := NewsContent{
		Filter: NewsFilterBar{
			Categories:       news.Categories,
			SelectedCategory: filter.Category,
			ImportantOnly:    filter.ImportantOnly,
		},
		DeleteControl: sess.Can(user.CapDeleteNews),
		Cards:         cards,
	}
	if sess.Can(user.CapEditNews) {
		content.AddControl = &AddControl{Label: "Add news", Options: news.Categories}
	}

	p := Page{Route: RouteNews, Title: "News", Content: content}
	if len(cards) == 0 {
		if unfiltered == 0 {
			p.Alerts = append(p.Alerts, infoAlert("No news yet"))
		} else {
			p.Alerts = append(p.Alerts, infoAlert("Nothing matches the selected filters"))
		}
	}
	return chrome(p)
}

func newsCard(it news.Item) NewsCard {
	card := NewsCard{
		ID:          it.ID,
		Title:       it.Title,
		Content:     it.Content,
		Category:    it.Category,
		IsImportant: it.IsImportant,
		Color:       "secondary",
		ImageURL:    it.ImageURL,
	}
	if it.IsImportant {
		card.Color = "danger"
	}
	if date, ok := it.PublishedAt(); ok {
		card.DateLabel = date.Format("02.01.2006")
	}
	return card
}
