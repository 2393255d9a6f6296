package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/deltahub/go-hub/content"
	"github.com/deltahub/go-hub/internal/validation"
)

// DefaultAuthor is used when a news item arrives without an author.
const DefaultAuthor = "Admin"

// AddNewsInput carries the caller-supplied fields for a new news item.
type AddNewsInput struct {
	Title       string
	Content     string
	Author      string
	Date        string
	ContentFile string
	Media       *content.Media
}

// AddNewsItem creates a news item, prepends it to the collection, and
// persists. Missing author defaults to DefaultAuthor, missing date to today.
func (s *Store) AddNewsItem(ctx context.Context, input AddNewsInput) (content.NewsItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return content.NewsItem{}, content.ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" && strings.TrimSpace(input.ContentFile) == "" {
		return content.NewsItem{}, content.ErrContentRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := content.NewsItem{
		ID:          s.ids.Next(),
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		ContentFile: strings.TrimSpace(input.ContentFile),
		Author:      strings.TrimSpace(input.Author),
		Date:        strings.TrimSpace(input.Date),
		Media:       input.Media,
	}
	if item.Author == "" {
		item.Author = DefaultAuthor
	}
	if item.Date == "" {
		item.Date = s.now().Format("2006-01-02")
	}
	if normalized, err := content.NormalizeSlug(item.Title); err == nil {
		item.Slug = normalized
	}

	s.data.News = append([]content.NewsItem{item}, s.data.News...)
	s.persistLocked(ctx, &s.data, content.CollectionNews)

	s.logger.Info("news item added", "id", item.ID, "title", item.Title)
	return item, nil
}

// AddWorkshopInput carries the caller-supplied fields for a new workshop.
type AddWorkshopInput struct {
	Title            string
	Date             string
	Location         string
	Description      string
	RegistrationLink string
	MaterialsLink    string
}

// AddWorkshop creates a workshop, appends it to the collection, and persists.
func (s *Store) AddWorkshop(ctx context.Context, input AddWorkshopInput) (content.Workshop, error) {
	if strings.TrimSpace(input.Title) == "" {
		return content.Workshop{}, content.ErrTitleRequired
	}
	if strings.TrimSpace(input.Date) == "" {
		return content.Workshop{}, content.ErrDateRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := content.Workshop{
		ID:               s.ids.Next(),
		Title:            strings.TrimSpace(input.Title),
		Date:             strings.TrimSpace(input.Date),
		Location:         strings.TrimSpace(input.Location),
		Description:      input.Description,
		RegistrationLink: strings.TrimSpace(input.RegistrationLink),
		MaterialsLink:    strings.TrimSpace(input.MaterialsLink),
	}

	s.data.Workshops = append(s.data.Workshops, item)
	s.persistLocked(ctx, &s.data, content.CollectionWorkshops)

	s.logger.Info("workshop added", "id", item.ID, "title", item.Title)
	return item, nil
}

// DeleteNewsItem removes a news item by id and persists. Unknown ids report
// false and leave the collection untouched; a successful delete emits a
// deletion event to the registered notifier.
func (s *Store) DeleteNewsItem(ctx context.Context, id content.ID) (bool, error) {
	s.mu.Lock()

	index := -1
	for i, item := range s.data.News {
		if item.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return false, nil
	}

	deleted := s.data.News[index]
	s.data.News = append(s.data.News[:index], s.data.News[index+1:]...)
	s.persistLocked(ctx, &s.data, content.CollectionNews)
	s.mu.Unlock()

	s.notifier.NotifyDeletion(ctx, DeletionEvent{
		EventID:     uuid.New().String(),
		ID:          deleted.ID,
		Title:       deleted.Title,
		ContentFile: deleted.ContentFile,
	})

	s.logger.Info("news item deleted", "id", deleted.ID, "title", deleted.Title)
	return true, nil
}

// Import replaces the collections named in the bundle and persists them.
// Absent collections stay untouched. The payload is schema-validated first;
// validation failures leave the store unchanged and name the failing
// locations.
func (s *Store) Import(ctx context.Context, payload []byte) error {
	if err := validation.ValidateImportPayload(payload); err != nil {
		return err
	}
	ds, err := content.DecodeDataset(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ds.News != nil {
		s.data.News = ds.News
		s.persistLocked(ctx, &s.data, content.CollectionNews)
	}
	if ds.Workshops != nil {
		s.data.Workshops = ds.Workshops
		s.persistLocked(ctx, &s.data, content.CollectionWorkshops)
	}
	if ds.Research != nil {
		s.data.Research = ds.Research
		s.persistLocked(ctx, &s.data, content.CollectionResearch)
	}
	if ds.Partners != nil {
		s.data.Partners = ds.Partners
		s.persistLocked(ctx, &s.data, content.CollectionPartners)
	}
	if ds.Measurements != nil {
		s.data.Measurements = ds.Measurements
		s.persistLocked(ctx, &s.data, content.CollectionMeasurements)
	}

	s.logger.Info("bundle imported")
	return nil
}

// Export bundles every collection into one JSON document suitable for
// Import.
func (s *Store) Export() ([]byte, error) {
	snapshot := s.Snapshot()
	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export encode: %w", err)
	}
	return encoded, nil
}
