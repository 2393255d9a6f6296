package views

import (
	"html/template"
	"strings"

	"github.com/deltahub/go-hub/content"
)

// ResearchCard is one research output ready for rendering. Optional fields
// stay empty and the caller omits the matching affordance.
type ResearchCard struct {
	ID          content.ID
	Title       string
	Type        string
	Label       string
	Badge       string
	Date        string
	Description template.HTML
	Authors     string
	URL         string
	DownloadURL string
}

// ResearchView keeps insertion order. Empty means the caller should keep its
// default page content.
type ResearchView struct {
	Items []ResearchCard
	Empty bool
}

// BadgeClass maps a research type onto its badge styling class.
func BadgeClass(kind content.ResearchType) string {
	switch kind {
	case content.ResearchPublication:
		return "primary"
	case content.ResearchReport:
		return "success"
	default:
		return "warning"
	}
}

// ResearchPage projects research outputs in their source order.
func ResearchPage(items []content.ResearchItem) ResearchView {
	view := ResearchView{Empty: len(items) == 0}
	for _, item := range items {
		view.Items = append(view.Items, ResearchCard{
			ID:          item.ID,
			Title:       item.Title,
			Type:        string(item.Type),
			Label:       typeLabel(item.Type),
			Badge:       BadgeClass(item.Type),
			Date:        item.Date,
			Description: researchDescription(item),
			Authors:     item.Authors,
			URL:         item.URL,
			DownloadURL: item.DownloadURL,
		})
	}
	return view
}

func typeLabel(kind content.ResearchType) string {
	value := string(kind)
	if value == "" {
		return ""
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func researchDescription(item content.ResearchItem) template.HTML {
	if item.DescriptionHTML != "" {
		return template.HTML(item.DescriptionHTML)
	}
	if item.Description == "" {
		return ""
	}
	return template.HTML(escape(item.Description))
}
