package services

import (
	"context"
	"fmt"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/domain/validation"
	"github.com/royalacademy/academy-go/internal/infrastructure/media"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
)

// EventsService pairs the events collection with its categories. Deleting a
// category is refused while any event still references it by name; events
// are never silently orphaned.
type EventsService struct {
	Events     *CollectionService[content.Event]
	Categories *CollectionService[content.EventCategory]
}

// NewEventsService wires the event and event-category services.
func NewEventsService(
	eventRepo *persistence.Repository[content.Event],
	categoryRepo *persistence.Repository[content.EventCategory],
	images *media.ImageProcessor,
) *EventsService {
	validateEvent := func(e content.Event) error {
		if err := validation.Required("title", e.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		if e.Date != "" {
			if _, err := validation.Date(e.Date); err != nil {
				return &collection.ValidationError{Field: "date", Reason: err.Error()}
			}
		}
		return nil
	}
	eventWithID := func(e content.Event, id string) content.Event {
		e.ID = id
		return e
	}
	normalizeEvent := func(_ context.Context, e content.Event) (content.Event, error) {
		if e.Image != "" {
			normalized, err := images.NormalizeDataURL(e.Image)
			if err != nil {
				return e, &collection.ValidationError{Field: "image", Reason: err.Error()}
			}
			e.Image = normalized
		}
		return e, nil
	}

	validateCategory := func(c content.EventCategory) error {
		if err := validation.Required("name", c.Name); err != nil {
			return &collection.ValidationError{Field: "name", Reason: "is required"}
		}
		return nil
	}
	categoryWithID := func(c content.EventCategory, id string) content.EventCategory {
		c.ID = id
		return c
	}

	s := &EventsService{}
	s.Events = NewCollectionService(eventRepo, validateEvent, eventWithID, normalizeEvent, nil)
	s.Categories = NewCollectionService(categoryRepo, validateCategory, categoryWithID, nil, s.guardCategoryDelete)
	return s
}

func (s *EventsService) guardCategoryDelete(ctx context.Context, victim content.EventCategory) error {
	events, err := s.Events.GetAll(ctx)
	if err != nil {
		return err
	}

	referencing := 0
	for _, e := range events {
		if e.Category == victim.Name {
			referencing++
		}
	}
	if referencing > 0 {
		return fmt.Errorf("category %q used by %d events: %w", victim.Name, referencing, ErrStillReferenced)
	}
	return nil
}

// GetPublished returns only events flagged for the public site.
func (s *EventsService) GetPublished(ctx context.Context) ([]content.Event, error) {
	events, err := s.Events.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	published := make([]content.Event, 0, len(events))
	for _, e := range events {
		if e.Published {
			published = append(published, e)
		}
	}
	return published, nil
}
