package views

import (
	"fmt"
	"html/template"
	"path"
	"sort"
	"strings"

	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/internal/identity"
	"github.com/deltahub/go-hub/internal/markdown"
	"github.com/deltahub/go-hub/pkg/interfaces"
)

// Media extensions recognized for article sidecar files.
var (
	articleImageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
	articleVideoExts = []string{".mp4", ".webm", ".ogg"}
)

// Article is a homepage news entry derived from a bare markdown file. This
// pipeline is independent of the news collection: posts are plain files,
// identity is derived from the path, and title/date are sniffed from the
// body when the frontmatter does not carry them.
type Article struct {
	ID    content.ID
	Path  string
	Title string
	Date  string
	Slug  string
	HTML  template.HTML
	Media template.HTML
}

// HomepageArticles builds articles from resolved markdown documents, newest
// first. mediaFiles lists the available sidecar media paths; a file sharing
// an article's base name becomes its media block.
func HomepageArticles(docs []interfaces.Document, mediaFiles []string) []Article {
	articles := make([]Article, 0, len(docs))
	for _, doc := range docs {
		base := articleBase(doc.Path)

		title := doc.Metadata["title"]
		if title == "" {
			title = markdown.SniffTitle(doc.Body, base)
		}
		date := doc.Metadata["date"]
		if date == "" {
			date = markdown.SniffDate(doc.Body)
		}

		article := Article{
			ID:    identity.SeedUUID("news", doc.Path),
			Path:  doc.Path,
			Title: title,
			Date:  date,
			HTML:  template.HTML(doc.HTML),
			Media: sidecarMedia(base, mediaFiles),
		}
		if normalized, err := content.NormalizeSlug(title); err == nil {
			article.Slug = normalized
		}
		articles = append(articles, article)
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date > articles[j].Date
	})
	return articles
}

// LatestArticles caps the article list for the homepage cards.
func LatestArticles(articles []Article) []Article {
	if len(articles) > latestNewsLimit {
		return articles[:latestNewsLimit]
	}
	return articles
}

func articleBase(p string) string {
	name := path.Base(p)
	return strings.TrimSuffix(name, path.Ext(name))
}

// sidecarMedia finds a media file sharing the article's base name. Images
// win over videos.
func sidecarMedia(base string, mediaFiles []string) template.HTML {
	match := func(exts []string) string {
		for _, file := range mediaFiles {
			ext := strings.ToLower(path.Ext(file))
			if articleBase(file) != base {
				continue
			}
			for _, candidate := range exts {
				if ext == candidate {
					return file
				}
			}
		}
		return ""
	}
	if file := match(articleImageExts); file != "" {
		return template.HTML(fmt.Sprintf(
			`<img src="%s" alt="%s" class="img-fluid rounded mb-3">`,
			escape(file), escape(base)))
	}
	if file := match(articleVideoExts); file != "" {
		return template.HTML(fmt.Sprintf(
			`<video src="%s" controls class="mb-3"></video>`,
			escape(file)))
	}
	return ""
}
