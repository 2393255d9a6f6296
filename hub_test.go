package hub

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/deltahub/go-hub/internal/fetch"
	"github.com/deltahub/go-hub/store"
)

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"data/news.json":      {Data: []byte(`[{"id":1,"title":"Survey published","content":"Body","date":"2025-02-01"}]`)},
		"data/workshops.json": {Data: []byte(`[{"id":10,"title":"Field methods","date":"2099-01-01"}]`)},
		"data/research.json":  {Data: []byte(`[{"id":20,"title":"Report","type":"report"}]`)},
		"data/consortium.json": {Data: []byte(
			`[{"id":30,"name":"Institute A","country":"RO","website":"https://example.org"}]`)},
		"data/measurements.json": {Data: []byte(
			`{"stations":[{"id":"st1","name":"Sulina","lat":45.1,"lon":29.6,"unit":"m","timeseries":[{"t":"2025-01-01","level":1.1}]}]}`)},
		"content/news/article1.md": {Data: []byte("# Expedition log\n\nWritten 2025-03-10.")},
		"content/news/article2.md": {Data: []byte("---\ntitle: \"Station opening\"\ndate: 2025-04-01\n---\nWe opened a station.")},
	}
}

func fixedNow() time.Time {
	parsed, _ := time.Parse("2006-01-02", "2025-06-01")
	return parsed
}

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Logging.Level = ""
	cfg.TeamPath = ""
	cfg.HomepageNewsFiles = []string{"content/news/article1.md", "content/news/article2.md"}

	h, err := New(cfg,
		WithSource(fetch.NewFSSource(siteFS())),
		WithClock(fixedNow),
	)
	if err != nil {
		t.Fatalf("new hub: %v", err)
	}
	t.Cleanup(func() {
		h.Close()
	})
	if err := h.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return h
}

func TestHubProjections(t *testing.T) {
	h := newTestHub(t)

	latest := h.LatestNews()
	if latest.Empty || len(latest.Items) != 1 || latest.Items[0].Title != "Survey published" {
		t.Fatalf("unexpected latest news: %+v", latest)
	}

	workshops := h.WorkshopsPage()
	if len(workshops.Upcoming) != 1 || len(workshops.Past) != 0 {
		t.Fatalf("unexpected workshop split: %+v", workshops)
	}

	research := h.ResearchPage()
	if research.Items[0].Badge != "success" {
		t.Fatalf("unexpected research badge: %+v", research.Items[0])
	}

	partners := h.PartnersPage()
	if len(partners.Members) != 1 || len(partners.Members[0].Socials) != 1 {
		t.Fatalf("unexpected partners view: %+v", partners)
	}

	dashboard := h.Dashboard("")
	if dashboard.NewsCount != 1 || dashboard.UpcomingWorkshopCount != 1 {
		t.Fatalf("unexpected dashboard counts: %+v", dashboard)
	}
	if dashboard.Selected == nil || dashboard.Selected.Name != "Sulina" {
		t.Fatalf("unexpected default station: %+v", dashboard.Selected)
	}
}

func TestHubHomepageNewsPipeline(t *testing.T) {
	h := newTestHub(t)

	articles := h.HomepageNews(context.Background())
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	// newest first: frontmatter date 2025-04-01 beats sniffed 2025-03-10
	if articles[0].Title != "Station opening" || articles[1].Title != "Expedition log" {
		t.Fatalf("unexpected article order: %+v", articles)
	}
	if articles[1].Date != "2025-03-10" {
		t.Fatalf("date sniffing failed: %+v", articles[1])
	}
}

func TestHubMutationsVisibleInProjections(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	item, err := h.Store().AddNewsItem(ctx, store.AddNewsInput{Title: "Fresh update", Content: "New body"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	latest := h.LatestNews()
	if latest.Items[0].ID != item.ID {
		t.Fatalf("mutation not visible in projection: %+v", latest.Items)
	}

	ok, err := h.Store().DeleteNewsItem(ctx, item.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if h.LatestNews().Items[0].ID == item.ID {
		t.Fatal("deleted item still projected")
	}
}

func TestHubSurvivesMissingRemote(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = ""
	cfg.TeamPath = ""

	h, err := New(cfg, WithSource(fetch.NewFSSource(fstest.MapFS{})), WithClock(fixedNow))
	if err != nil {
		t.Fatalf("new hub: %v", err)
	}
	defer h.Close()

	if err := h.Load(context.Background()); err != nil {
		t.Fatalf("load with unreachable seeds must not fail: %v", err)
	}
	if view := h.LatestNews(); !view.Empty {
		t.Fatalf("expected empty view intent, got %+v", view)
	}
}
