package views

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/deltahub/go-hub/content"
)

const latestNewsLimit = 3

// NewsCard is one news entry ready for rendering.
type NewsCard struct {
	ID      content.ID
	Title   string
	Date    string
	Author  string
	Slug    string
	Excerpt string
	// HTML is the full rendered body, resolved markdown when available,
	// escaped raw content otherwise.
	HTML template.HTML
	// Media is the attached media block, empty when the item carries none.
	Media template.HTML
}

// NewsView is the news projection result. Empty signals the "no news yet"
// display intent.
type NewsView struct {
	Items []NewsCard
	Empty bool
}

// SortNewsByDateDesc returns a copy sorted newest first. Items sharing a
// date keep their input order.
func SortNewsByDateDesc(items []content.NewsItem) []content.NewsItem {
	sorted := append([]content.NewsItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// LatestNews projects the three newest items for the homepage cards.
func LatestNews(items []content.NewsItem) NewsView {
	sorted := SortNewsByDateDesc(items)
	if len(sorted) > latestNewsLimit {
		sorted = sorted[:latestNewsLimit]
	}
	view := NewsView{Empty: len(sorted) == 0}
	for _, item := range sorted {
		view.Items = append(view.Items, NewsCard{
			ID:      item.ID,
			Title:   item.Title,
			Date:    item.Date,
			Author:  item.Author,
			Slug:    item.Slug,
			Excerpt: newsExcerpt(item),
		})
	}
	return view
}

// NewsPage projects every item, newest first, with full body and media.
func NewsPage(items []content.NewsItem) NewsView {
	sorted := SortNewsByDateDesc(items)
	view := NewsView{Empty: len(sorted) == 0}
	for _, item := range sorted {
		view.Items = append(view.Items, NewsCard{
			ID:      item.ID,
			Title:   item.Title,
			Date:    item.Date,
			Author:  item.Author,
			Slug:    item.Slug,
			Excerpt: newsExcerpt(item),
			HTML:    newsBody(item),
			Media:   MediaBlock(item.Media, item.Title),
		})
	}
	return view
}

// newsExcerpt prefers the resolved HTML's text content, falling back to the
// raw content field.
func newsExcerpt(item content.NewsItem) string {
	if item.ContentHTML != "" {
		return excerpt(stripTags(item.ContentHTML))
	}
	return excerpt(item.Content)
}

// newsBody returns the resolved HTML as-is (it was sanitized during
// resolution) or the escaped raw content.
func newsBody(item content.NewsItem) template.HTML {
	if item.ContentHTML != "" {
		return template.HTML(item.ContentHTML)
	}
	return template.HTML(escape(item.Content))
}

// MediaBlock renders an attached media entry. Images become img elements,
// known video-host URLs become iframe embeds, any other video URL a plain
// video element.
func MediaBlock(media *content.Media, alt string) template.HTML {
	if media == nil || media.URL == "" {
		return ""
	}
	switch media.Type {
	case content.MediaImage:
		return template.HTML(fmt.Sprintf(
			`<img src="%s" alt="%s" class="img-fluid rounded mb-3">`,
			escape(media.URL), escape(alt)))
	case content.MediaVideo:
		if embed, ok := videoEmbedURL(media.URL); ok {
			return template.HTML(fmt.Sprintf(
				`<iframe src="%s" frameborder="0" allowfullscreen class="mb-3"></iframe>`,
				escape(embed)))
		}
		return template.HTML(fmt.Sprintf(
			`<video src="%s" controls class="mb-3"></video>`,
			escape(media.URL)))
	default:
		return ""
	}
}

// videoEmbedURL maps a watch-page URL of a known video host to its embed
// form.
func videoEmbedURL(url string) (string, bool) {
	if idx := strings.Index(url, "youtube.com/watch?v="); idx >= 0 {
		id := url[idx+len("youtube.com/watch?v="):]
		if amp := strings.IndexAny(id, "&#"); amp >= 0 {
			id = id[:amp]
		}
		if id != "" {
			return "https://www.youtube.com/embed/" + id, true
		}
	}
	if idx := strings.Index(url, "youtu.be/"); idx >= 0 {
		id := strings.Trim(url[idx+len("youtu.be/"):], "/")
		if q := strings.IndexAny(id, "?&#"); q >= 0 {
			id = id[:q]
		}
		if id != "" {
			return "https://www.youtube.com/embed/" + id, true
		}
	}
	if idx := strings.Index(url, "vimeo.com/"); idx >= 0 {
		id := strings.Trim(url[idx+len("vimeo.com/"):], "/")
		if q := strings.IndexAny(id, "?&#"); q >= 0 {
			id = id[:q]
		}
		if id != "" && !strings.Contains(id, "/") {
			return "https://player.vimeo.com/video/" + id, true
		}
	}
	return "", false
}
