package views

import (
	"html/template"
	"sort"

	"github.com/deltahub/go-hub/content"
)

const homeWorkshopsLimit = 2

// WorkshopCard is one workshop ready for rendering.
type WorkshopCard struct {
	ID               content.ID
	Title            string
	Date             string
	Location         string
	Description      template.HTML
	RegistrationLink string
	MaterialsLink    string
}

// WorkshopsView partitions workshops around today. Empty signals that no
// workshop exists at all.
type WorkshopsView struct {
	Upcoming []WorkshopCard
	Past     []WorkshopCard
	Empty    bool
}

// PartitionWorkshops splits workshops into upcoming (date >= today,
// ascending) and past (descending). ISO dates compare lexicographically so
// plain string comparison is sufficient.
func PartitionWorkshops(items []content.Workshop, today string) (upcoming, past []content.Workshop) {
	for _, item := range items {
		if item.Date >= today {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date > past[j].Date
	})
	return upcoming, past
}

// WorkshopsPage projects the full workshops listing.
func WorkshopsPage(items []content.Workshop, today string) WorkshopsView {
	upcoming, past := PartitionWorkshops(items, today)
	return WorkshopsView{
		Upcoming: workshopCards(upcoming),
		Past:     workshopCards(past),
		Empty:    len(items) == 0,
	}
}

// HomeWorkshops projects the homepage's upcoming-workshop cards, capped at
// two.
func HomeWorkshops(items []content.Workshop, today string) []WorkshopCard {
	upcoming, _ := PartitionWorkshops(items, today)
	if len(upcoming) > homeWorkshopsLimit {
		upcoming = upcoming[:homeWorkshopsLimit]
	}
	return workshopCards(upcoming)
}

func workshopCards(items []content.Workshop) []WorkshopCard {
	cards := make([]WorkshopCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, WorkshopCard{
			ID:               item.ID,
			Title:            item.Title,
			Date:             item.Date,
			Location:         item.Location,
			Description:      workshopDescription(item),
			RegistrationLink: item.RegistrationLink,
			MaterialsLink:    item.MaterialsLink,
		})
	}
	return cards
}

func workshopDescription(item content.Workshop) template.HTML {
	if item.DescriptionHTML != "" {
		return template.HTML(item.DescriptionHTML)
	}
	if item.Description == "" {
		return ""
	}
	return template.HTML(escape(item.Description))
}
