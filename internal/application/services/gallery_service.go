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

// GalleryService pairs the photo gallery with its categories under the same
// refuse-if-referenced delete policy as events.
type GalleryService struct {
	Images     *CollectionService[content.GalleryImage]
	Categories *CollectionService[content.GalleryCategory]
}

// NewGalleryService wires the gallery image and category services.
func NewGalleryService(
	imageRepo *persistence.Repository[content.GalleryImage],
	categoryRepo *persistence.Repository[content.GalleryCategory],
	images *media.ImageProcessor,
) *GalleryService {
	validateImage := func(g content.GalleryImage) error {
		if err := validation.Required("title", g.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		if err := validation.Required("image", g.Image); err != nil {
			return &collection.ValidationError{Field: "image", Reason: "is required"}
		}
		if g.Date != "" {
			if _, err := validation.Date(g.Date); err != nil {
				return &collection.ValidationError{Field: "date", Reason: err.Error()}
			}
		}
		return nil
	}
	imageWithID := func(g content.GalleryImage, id string) content.GalleryImage {
		g.ID = id
		return g
	}
	normalizeImage := func(_ context.Context, g content.GalleryImage) (content.GalleryImage, error) {
		normalized, err := images.NormalizeDataURL(g.Image)
		if err != nil {
			return g, &collection.ValidationError{Field: "image", Reason: err.Error()}
		}
		g.Image = normalized
		return g, nil
	}

	validateCategory := func(c content.GalleryCategory) error {
		if err := validation.Required("name", c.Name); err != nil {
			return &collection.ValidationError{Field: "name", Reason: "is required"}
		}
		return nil
	}
	categoryWithID := func(c content.GalleryCategory, id string) content.GalleryCategory {
		c.ID = id
		return c
	}

	s := &GalleryService{}
	s.Images = NewCollectionService(imageRepo, validateImage, imageWithID, normalizeImage, nil)
	s.Categories = NewCollectionService(categoryRepo, validateCategory, categoryWithID, nil, s.guardCategoryDelete)
	return s
}

func (s *GalleryService) guardCategoryDelete(ctx context.Context, victim content.GalleryCategory) error {
	images, err := s.Images.GetAll(ctx)
	if err != nil {
		return err
	}

	referencing := 0
	for _, g := range images {
		if g.Category == victim.Name {
			referencing++
		}
	}
	if referencing > 0 {
		return fmt.Errorf("category %q used by %d images: %w", victim.Name, referencing, ErrStillReferenced)
	}
	return nil
}

// GetByCategory returns the images tagged with one category name, in stored
// order.
func (s *GalleryService) GetByCategory(ctx context.Context, categoryName string) ([]content.GalleryImage, error) {
	images, err := s.Images.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]content.GalleryImage, 0, len(images))
	for _, g := range images {
		if g.Category == categoryName {
			matched = append(matched, g)
		}
	}
	return matched, nil
}
