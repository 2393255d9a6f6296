package hub

import "github.com/deltahub/go-hub/content"

// Config wires the hub's collaborators. The zero value is usable: in-memory
// storage, no remote source, goldmark rendering, no logging.
type Config struct {
	// BaseURL is the remote root the seed JSON and markdown files are
	// fetched from. Empty disables remote fetching; the hub then serves
	// whatever durable storage holds.
	BaseURL string

	// Endpoints maps collection names to seed paths relative to BaseURL.
	// Nil uses the conventional data/ paths.
	Endpoints map[string]string

	// TeamPath locates the optional team overlay resource. Empty disables
	// the overlay.
	TeamPath string

	// HomepageNewsFiles lists the markdown posts the homepage pipeline
	// renders, independent of the news collection.
	HomepageNewsFiles []string

	// MediaFiles lists the sidecar media paths available to homepage posts.
	MediaFiles []string

	Storage  StorageConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
}

// StorageConfig selects the durable backend.
type StorageConfig struct {
	// DSN is a sqlite data source name. Empty keeps collections in memory
	// only.
	DSN string
}

// MarkdownConfig tunes the markdown pipeline.
type MarkdownConfig struct {
	// Extensions selects goldmark extensions by name. Nil enables the
	// defaults (gfm, linkify).
	Extensions []string
	// HardWraps renders single newlines as <br> elements.
	HardWraps bool
	// UseFallbackRenderer swaps goldmark for the escaping paragraph
	// renderer.
	UseFallbackRenderer bool
}

// LoggingConfig configures the go-logger provider. An empty Level disables
// logging entirely.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig mirrors the conventional static-site layout.
func DefaultConfig() Config {
	return Config{
		Endpoints: map[string]string{
			content.CollectionNews:         "data/news.json",
			content.CollectionWorkshops:    "data/workshops.json",
			content.CollectionResearch:     "data/research.json",
			content.CollectionPartners:     "data/consortium.json",
			content.CollectionMeasurements: "data/measurements.json",
		},
		TeamPath: "data/team.json",
		HomepageNewsFiles: []string{
			"content/news/article1.md",
			"content/news/article2.md",
			"content/news/article3.md",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
