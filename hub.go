// Package hub is the content core of a research-outreach site: typed
// collections loaded from JSON seeds and markdown files, merged with local
// edits, mirrored into durable storage, and projected into page view models.
package hub

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/mattn/go-sqlite3"

	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/internal/fetch"
	"github.com/deltahub/go-hub/internal/logging"
	"github.com/deltahub/go-hub/internal/logging/gologger"
	"github.com/deltahub/go-hub/internal/markdown"
	"github.com/deltahub/go-hub/internal/storage"
	"github.com/deltahub/go-hub/pkg/interfaces"
	"github.com/deltahub/go-hub/store"
	"github.com/deltahub/go-hub/views"
)

// Re-exported content types so embedders rarely need the content package
// directly.
type (
	Dataset      = content.Dataset
	NewsItem     = content.NewsItem
	Workshop     = content.Workshop
	ResearchItem = content.ResearchItem
	Partner      = content.Partner
	Station      = content.Station
	ID           = content.ID
)

// Hub assembles the store, markdown resolver, and projections behind one
// façade.
type Hub struct {
	cfg      Config
	store    *store.Store
	resolver interfaces.MarkdownResolver
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	now      func() time.Time
	sqlDB    *sql.DB
}

// Option overrides the default wiring.
type Option func(*wiring)

type wiring struct {
	provider interfaces.LoggerProvider
	repo     storage.Repository
	source   interfaces.Source
	notifier store.Notifier
	now      func() time.Time
}

// WithLoggerProvider overrides the logging provider built from Config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(w *wiring) { w.provider = provider }
}

// WithRepository overrides the durable storage backend.
func WithRepository(repo storage.Repository) Option {
	return func(w *wiring) { w.repo = repo }
}

// WithSource overrides where seeds and markdown are fetched from.
func WithSource(source interfaces.Source) Option {
	return func(w *wiring) { w.source = source }
}

// WithNotifier registers the deletion event consumer.
func WithNotifier(notifier store.Notifier) Option {
	return func(w *wiring) { w.notifier = notifier }
}

// WithClock injects the clock used for default dates and the today cutoff.
func WithClock(now func() time.Time) Option {
	return func(w *wiring) { w.now = now }
}

// New assembles a hub from configuration. Call Load before reading any
// projection, and Close when done.
func New(cfg Config, opts ...Option) (*Hub, error) {
	w := &wiring{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}

	if w.provider == nil && cfg.Logging.Level != "" {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		w.provider = provider
	}

	h := &Hub{
		cfg:      cfg,
		provider: w.provider,
		logger:   logging.ModuleLogger(w.provider, ""),
		now:      w.now,
	}

	if w.source == nil && cfg.BaseURL != "" {
		w.source = fetch.NewHTTPSource(cfg.BaseURL)
	}

	if w.repo == nil {
		if cfg.Storage.DSN != "" {
			sqlDB, err := sql.Open("sqlite3", cfg.Storage.DSN)
			if err != nil {
				return nil, fmt.Errorf("hub: open storage: %w", err)
			}
			db := bun.NewDB(sqlDB, sqlitedialect.New())
			repo := storage.NewBunRepository(db)
			if err := repo.Init(context.Background()); err != nil {
				sqlDB.Close()
				return nil, fmt.Errorf("hub: init storage: %w", err)
			}
			h.sqlDB = sqlDB
			w.repo = repo
		} else {
			w.repo = storage.NewMemoryRepository()
		}
	}

	if w.source != nil {
		resolverOpts := []markdown.Option{
			markdown.WithLogger(logging.MarkdownLogger(w.provider)),
			markdown.WithParseOptions(interfaces.ParseOptions{
				Extensions: cfg.Markdown.Extensions,
				HardWraps:  cfg.Markdown.HardWraps,
			}),
		}
		if cfg.Markdown.UseFallbackRenderer {
			resolverOpts = append(resolverOpts, markdown.WithParser(markdown.NewFallbackParser()))
		}
		h.resolver = markdown.NewResolver(w.source, resolverOpts...)
	}

	storeOpts := []store.Option{
		store.WithRepository(w.repo),
		store.WithSource(w.source),
		store.WithResolver(h.resolver),
		store.WithTeamPath(cfg.TeamPath),
		store.WithClock(w.now),
		store.WithLogger(logging.StoreLogger(w.provider)),
	}
	if len(cfg.Endpoints) > 0 {
		storeOpts = append(storeOpts, store.WithEndpoints(cfg.Endpoints))
	}
	if w.notifier != nil {
		storeOpts = append(storeOpts, store.WithNotifier(w.notifier))
	}
	h.store = store.New(storeOpts...)

	return h, nil
}

// Load populates the collections. See store.Store.Load for the semantics.
func (h *Hub) Load(ctx context.Context) error {
	return h.store.Load(ctx)
}

// Store exposes the content store for mutations and raw access.
func (h *Hub) Store() *store.Store {
	return h.store
}

// Close releases the storage handle when one was opened.
func (h *Hub) Close() error {
	if h.sqlDB != nil {
		return h.sqlDB.Close()
	}
	return nil
}

// Today returns the hub's current date cutoff.
func (h *Hub) Today() string {
	return h.now().Format("2006-01-02")
}

// LatestNews projects the homepage's latest-news cards.
func (h *Hub) LatestNews() views.NewsView {
	return views.LatestNews(h.store.News())
}

// NewsPage projects the full news listing.
func (h *Hub) NewsPage() views.NewsView {
	return views.NewsPage(h.store.News())
}

// WorkshopsPage projects the workshops listing split around today.
func (h *Hub) WorkshopsPage() views.WorkshopsView {
	return views.WorkshopsPage(h.store.Workshops(), h.Today())
}

// HomeWorkshops projects the homepage's upcoming-workshop cards.
func (h *Hub) HomeWorkshops() []views.WorkshopCard {
	return views.HomeWorkshops(h.store.Workshops(), h.Today())
}

// ResearchPage projects the research listing.
func (h *Hub) ResearchPage() views.ResearchView {
	return views.ResearchPage(h.store.Research())
}

// PartnersPage projects the consortium or team listing.
func (h *Hub) PartnersPage() views.PartnersView {
	return views.PartnersPage(h.store.Partners())
}

// Dashboard projects the measurements dashboard. An empty station id selects
// the first station.
func (h *Hub) Dashboard(station content.ID) views.DashboardView {
	return views.Dashboard(h.store.Snapshot(), h.Today(), station)
}

// HomepageNews loads and projects the markdown-file news pipeline. Files
// that fail to resolve are skipped with a warning; the remaining articles
// come back newest first.
func (h *Hub) HomepageNews(ctx context.Context) []views.Article {
	if h.resolver == nil || len(h.cfg.HomepageNewsFiles) == 0 {
		return nil
	}
	docs := make([]interfaces.Document, 0, len(h.cfg.HomepageNewsFiles))
	for _, path := range h.cfg.HomepageNewsFiles {
		doc, err := h.resolver.Resolve(ctx, path)
		if err != nil {
			h.logger.Warn("homepage post skipped", "path", path, "error", err)
			continue
		}
		docs = append(docs, *doc)
	}
	return views.HomepageArticles(docs, h.cfg.MediaFiles)
}
