package views

import (
	"html/template"

	"github.com/deltahub/go-hub/content"
)

// SocialLink is one external profile link on a member card.
type SocialLink struct {
	Kind string
	URL  string
}

// PartnerCard is one consortium or team member ready for rendering.
// HasPhoto tells the caller whether to show the photo or a placeholder icon.
type PartnerCard struct {
	ID          content.ID
	Name        string
	Country     string
	Role        string
	Photo       string
	HasPhoto    bool
	Description template.HTML
	Socials     []SocialLink
}

// PartnersView keeps insertion order. Empty means the caller should keep its
// default page content.
type PartnersView struct {
	Members []PartnerCard
	Empty   bool
}

// PartnersPage projects members in their source order. Only the social links
// actually present appear on a card.
func PartnersPage(items []content.Partner) PartnersView {
	view := PartnersView{Empty: len(items) == 0}
	for _, item := range items {
		card := PartnerCard{
			ID:          item.ID,
			Name:        item.Name,
			Country:     item.Country,
			Role:        item.Role,
			Photo:       item.Photo,
			HasPhoto:    item.Photo != "",
			Description: partnerDescription(item),
		}
		if item.LinkedIn != "" {
			card.Socials = append(card.Socials, SocialLink{Kind: "linkedin", URL: item.LinkedIn})
		}
		if item.ResearchGate != "" {
			card.Socials = append(card.Socials, SocialLink{Kind: "researchgate", URL: item.ResearchGate})
		}
		if item.Website != "" {
			card.Socials = append(card.Socials, SocialLink{Kind: "website", URL: item.Website})
		}
		view.Members = append(view.Members, card)
	}
	return view
}

func partnerDescription(item content.Partner) template.HTML {
	if item.DescriptionHTML != "" {
		return template.HTML(item.DescriptionHTML)
	}
	if item.Description == "" {
		return ""
	}
	return template.HTML(escape(item.Description))
}
