// Package store implements the content store: five typed collections
// mirrored into a durable key-value store, loaded from remote seeds, merged
// with local edits, and enriched with resolved markdown.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/internal/fetch"
	"github.com/deltahub/go-hub/internal/identity"
	"github.com/deltahub/go-hub/internal/logging"
	"github.com/deltahub/go-hub/internal/storage"
	"github.com/deltahub/go-hub/pkg/interfaces"
)

const storageKeyPrefix = "deltahub_"

// StorageKey returns the durable storage key backing a collection.
func StorageKey(collection string) string {
	return storageKeyPrefix + collection
}

// DefaultEndpoints maps each collection to its conventional seed path.
func DefaultEndpoints() map[string]string {
	return map[string]string{
		content.CollectionNews:         "data/news.json",
		content.CollectionWorkshops:    "data/workshops.json",
		content.CollectionResearch:     "data/research.json",
		content.CollectionPartners:     "data/consortium.json",
		content.CollectionMeasurements: "data/measurements.json",
	}
}

// DefaultTeamPath is the conventional location of the team overlay resource.
const DefaultTeamPath = "data/team.json"

// Store is the content store. Create it with New, call Load once, then read
// through the accessors and mutate through the mutation methods. Safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	data     content.Dataset
	repo     storage.Repository
	source   interfaces.Source
	resolver interfaces.MarkdownResolver
	notifier Notifier

	endpoints map[string]string
	teamPath  string

	ids    *identity.Generator
	now    func() time.Time
	logger interfaces.Logger
}

// Option configures the store.
type Option func(*Store)

// WithRepository sets the durable storage backend.
func WithRepository(repo storage.Repository) Option {
	return func(s *Store) {
		if repo != nil {
			s.repo = repo
		}
	}
}

// WithSource sets where remote seeds and markdown files are fetched from.
// Without a source the load phase uses durable storage only.
func WithSource(source interfaces.Source) Option {
	return func(s *Store) {
		s.source = source
	}
}

// WithResolver sets the markdown resolver used for *_file enrichment.
// Without a resolver the enrichment pass is skipped.
func WithResolver(resolver interfaces.MarkdownResolver) Option {
	return func(s *Store) {
		s.resolver = resolver
	}
}

// WithNotifier registers the deletion event consumer.
func WithNotifier(notifier Notifier) Option {
	return func(s *Store) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithEndpoints overrides the per-collection seed paths.
func WithEndpoints(endpoints map[string]string) Option {
	return func(s *Store) {
		if len(endpoints) > 0 {
			s.endpoints = endpoints
		}
	}
}

// WithTeamPath overrides the team overlay location. Empty disables the
// overlay.
func WithTeamPath(path string) Option {
	return func(s *Store) {
		s.teamPath = path
	}
}

// WithClock injects the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator injects the id generator for new items.
func WithIDGenerator(gen *identity.Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithLogger injects the store logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a store. Defaults: in-memory durable storage, no remote source,
// no markdown resolver, wall clock, no-op notifier.
func New(opts ...Option) *Store {
	s := &Store{
		repo:      storage.NewMemoryRepository(),
		notifier:  NoopNotifier{},
		endpoints: DefaultEndpoints(),
		teamPath:  DefaultTeamPath,
		ids:       identity.NewGenerator(),
		now:       time.Now,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load populates the collections. Durable storage is read first; when every
// collection is empty the remote seeds replace them wholesale, otherwise the
// remote seeds are merged in with local entries winning. The team overlay,
// when present and non-empty, replaces partners outright. Finally every
// *_file reference is resolved to HTML. A panic anywhere in the sequence
// resets all collections to empty so no partial mix survives.
func (s *Store) Load(ctx context.Context) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.data = content.Dataset{}
			err = fmt.Errorf("store load: %v", r)
			s.logger.Error("load failed, collections reset", "reason", r)
		}
	}()

	local := s.readLocal(ctx)
	if local.Empty() {
		s.logger.Info("empty local storage, fetching seeds")
		s.data = s.fetchAll(ctx)
	} else {
		s.logger.Info("merging remote seeds into local data")
		s.data = s.mergeRemote(ctx, local)
	}

	s.applyTeamOverlay(ctx)
	s.resolveMarkdown(ctx)
	return nil
}

// readLocal reads every collection from durable storage. Absent or corrupt
// entries come back empty.
func (s *Store) readLocal(ctx context.Context) content.Dataset {
	var ds content.Dataset
	for _, name := range content.CollectionNames() {
		raw, err := s.repo.Get(ctx, StorageKey(name))
		if err != nil {
			continue
		}
		if err := decodeInto(&ds, name, raw); err != nil {
			s.logger.Warn("corrupt local collection, using empty", "collection", name, "error", err)
		}
	}
	return ds
}

// fetchAll fetches every collection seed and persists the successful ones.
// A failed fetch leaves that collection empty and never blocks siblings.
func (s *Store) fetchAll(ctx context.Context) content.Dataset {
	var ds content.Dataset
	for _, name := range content.CollectionNames() {
		raw, err := s.fetchCollection(ctx, name)
		if err != nil {
			s.logCollectionFailure(name, err)
			continue
		}
		if err := decodeInto(&ds, name, raw); err != nil {
			s.logCollectionFailure(name, err)
			continue
		}
		s.persistLocked(ctx, &ds, name)
	}
	return ds
}

// mergeRemote merges each remote seed into the locally cached collection.
// Failed fetches keep the local data untouched.
func (s *Store) mergeRemote(ctx context.Context, local content.Dataset) content.Dataset {
	ds := local
	for _, name := range content.CollectionNames() {
		raw, err := s.fetchCollection(ctx, name)
		if err != nil {
			s.logCollectionFailure(name, err)
			continue
		}
		var remote content.Dataset
		if err := decodeInto(&remote, name, raw); err != nil {
			s.logCollectionFailure(name, err)
			continue
		}
		switch name {
		case content.CollectionNews:
			ds.News = content.Merge(ds.News, remote.News)
		case content.CollectionWorkshops:
			ds.Workshops = content.Merge(ds.Workshops, remote.Workshops)
		case content.CollectionResearch:
			ds.Research = content.Merge(ds.Research, remote.Research)
		case content.CollectionPartners:
			ds.Partners = content.Merge(ds.Partners, remote.Partners)
		case content.CollectionMeasurements:
			ds.Measurements = content.Merge(ds.Measurements, remote.Measurements)
		}
		s.persistLocked(ctx, &ds, name)
	}
	return ds
}

func (s *Store) fetchCollection(ctx context.Context, name string) ([]byte, error) {
	if s.source == nil {
		return nil, fmt.Errorf("no source configured")
	}
	path, ok := s.endpoints[name]
	if !ok || path == "" {
		return nil, fmt.Errorf("no endpoint for collection %s", name)
	}
	return s.source.Fetch(ctx, path)
}

// applyTeamOverlay replaces partners with the team resource when it is
// present and non-empty. Absence or failure leaves the merge result alone.
func (s *Store) applyTeamOverlay(ctx context.Context) {
	if s.source == nil || s.teamPath == "" {
		return
	}
	raw, err := s.source.Fetch(ctx, s.teamPath)
	if err != nil {
		s.logger.Debug("team overlay unavailable", "error", err)
		return
	}
	team, err := content.DecodePartners(raw)
	if err != nil {
		s.logger.Warn("team overlay unreadable", "error", err)
		return
	}
	if len(team) == 0 {
		return
	}
	s.data.Partners = team
	s.persistLocked(ctx, &s.data, content.CollectionPartners)
}

// resolveMarkdown resolves every *_file reference into the matching *_html
// field. Failures skip the item with a warning.
func (s *Store) resolveMarkdown(ctx context.Context) {
	if s.resolver == nil {
		return
	}
	resolve := func(path string) (string, bool) {
		doc, err := s.resolver.Resolve(ctx, path)
		if err != nil {
			s.logger.Warn("markdown resolve skipped", "path", path, "error", err)
			return "", false
		}
		return doc.HTML, true
	}
	for i := range s.data.News {
		if file := s.data.News[i].ContentFile; file != "" {
			if html, ok := resolve(file); ok {
				s.data.News[i].ContentHTML = html
			}
		}
	}
	for i := range s.data.Workshops {
		if file := s.data.Workshops[i].DescriptionFile; file != "" {
			if html, ok := resolve(file); ok {
				s.data.Workshops[i].DescriptionHTML = html
			}
		}
	}
	for i := range s.data.Research {
		if file := s.data.Research[i].DescriptionFile; file != "" {
			if html, ok := resolve(file); ok {
				s.data.Research[i].DescriptionHTML = html
			}
		}
	}
	for i := range s.data.Partners {
		if file := s.data.Partners[i].DescriptionFile; file != "" {
			if html, ok := resolve(file); ok {
				s.data.Partners[i].DescriptionHTML = html
			}
		}
	}
}

func (s *Store) logCollectionFailure(name string, err error) {
	if fetch.IsFetchError(err) {
		s.logger.Warn("collection fetch failed", "collection", name, "error", err)
		return
	}
	s.logger.Warn("collection payload unreadable", "collection", name, "error", err)
}

// decodeInto decodes a collection payload into the dataset slot for name.
func decodeInto(ds *content.Dataset, name string, raw []byte) error {
	switch name {
	case content.CollectionNews:
		items, err := content.DecodeNews(raw)
		if err != nil {
			return err
		}
		ds.News = items
	case content.CollectionWorkshops:
		items, err := content.DecodeWorkshops(raw)
		if err != nil {
			return err
		}
		ds.Workshops = items
	case content.CollectionResearch:
		items, err := content.DecodeResearch(raw)
		if err != nil {
			return err
		}
		ds.Research = items
	case content.CollectionPartners:
		items, err := content.DecodePartners(raw)
		if err != nil {
			return err
		}
		ds.Partners = items
	case content.CollectionMeasurements:
		items, err := content.DecodeStations(raw)
		if err != nil {
			return err
		}
		ds.Measurements = items
	default:
		return content.ErrUnknownCollection
	}
	return nil
}

// persistLocked writes one collection of ds to durable storage. Callers hold
// the write lock or own ds exclusively.
func (s *Store) persistLocked(ctx context.Context, ds *content.Dataset, name string) {
	var payload any
	switch name {
	case content.CollectionNews:
		payload = emptySlice(ds.News)
	case content.CollectionWorkshops:
		payload = emptySlice(ds.Workshops)
	case content.CollectionResearch:
		payload = emptySlice(ds.Research)
	case content.CollectionPartners:
		payload = emptySlice(ds.Partners)
	case content.CollectionMeasurements:
		payload = emptySlice(ds.Measurements)
	default:
		return
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("collection encode failed", "collection", name, "error", err)
		return
	}
	if err := s.repo.Put(ctx, StorageKey(name), encoded); err != nil {
		s.logger.Error("collection persist failed", "collection", name, "error", err)
	}
}

// emptySlice keeps persisted payloads as [] instead of null.
func emptySlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Save persists a single collection.
func (s *Store) Save(ctx context.Context, name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch name {
	case content.CollectionNews, content.CollectionWorkshops,
		content.CollectionResearch, content.CollectionPartners,
		content.CollectionMeasurements:
		s.persistLocked(ctx, &s.data, name)
		return nil
	default:
		return content.ErrUnknownCollection
	}
}

// SaveAll persists every collection.
func (s *Store) SaveAll(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, name := range content.CollectionNames() {
		s.persistLocked(ctx, &s.data, name)
	}
	return nil
}

// Snapshot returns a deep copy of every collection.
func (s *Store) Snapshot() content.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// News returns a copy of the news collection.
func (s *Store) News() []content.NewsItem {
	return s.Snapshot().News
}

// Workshops returns a copy of the workshops collection.
func (s *Store) Workshops() []content.Workshop {
	return s.Snapshot().Workshops
}

// Research returns a copy of the research collection.
func (s *Store) Research() []content.ResearchItem {
	return s.Snapshot().Research
}

// Partners returns a copy of the partners collection.
func (s *Store) Partners() []content.Partner {
	return s.Snapshot().Partners
}

// Measurements returns a copy of the measurement stations.
func (s *Store) Measurements() []content.Station {
	return s.Snapshot().Measurements
}
