package services

import (
	"context"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/domain/validation"
	"github.com/royalacademy/academy-go/internal/infrastructure/media"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
)

// NewDepartmentService builds the academics department service. Unknown icon
// names silently fall back to the default rather than failing the commit.
func NewDepartmentService(repo *persistence.Repository[content.Department]) *CollectionService[content.Department] {
	validate := func(d content.Department) error {
		if err := validation.Required("title", d.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		if err := validation.Required("description", d.Description); err != nil {
			return &collection.ValidationError{Field: "description", Reason: "is required"}
		}
		return nil
	}
	withID := func(d content.Department, id string) content.Department {
		d.ID = id
		return d
	}
	normalize := func(_ context.Context, d content.Department) (content.Department, error) {
		d.Icon = content.NormalizeIcon(d.Icon)
		return d, nil
	}
	return NewCollectionService(repo, validate, withID, normalize, nil)
}

// NewAchievementService builds the achievements stat-card service.
func NewAchievementService(repo *persistence.Repository[content.Achievement]) *CollectionService[content.Achievement] {
	validate := func(a content.Achievement) error {
		if err := validation.Required("title", a.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		return nil
	}
	withID := func(a content.Achievement, id string) content.Achievement {
		a.ID = id
		return a
	}
	normalize := func(_ context.Context, a content.Achievement) (content.Achievement, error) {
		a.Icon = content.NormalizeIcon(a.Icon)
		return a, nil
	}
	return NewCollectionService(repo, validate, withID, normalize, nil)
}

// NewFacilityService builds the campus facilities service. Inline facility
// photos pass through the image processor before storage.
func NewFacilityService(repo *persistence.Repository[content.Facility], images *media.ImageProcessor) *CollectionService[content.Facility] {
	validate := func(f content.Facility) error {
		if err := validation.Required("title", f.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		return nil
	}
	withID := func(f content.Facility, id string) content.Facility {
		f.ID = id
		return f
	}
	normalize := func(_ context.Context, f content.Facility) (content.Facility, error) {
		f.Icon = content.NormalizeIcon(f.Icon)
		if f.Image != "" {
			normalized, err := images.NormalizeDataURL(f.Image)
			if err != nil {
				return f, &collection.ValidationError{Field: "image", Reason: err.Error()}
			}
			f.Image = normalized
		}
		return f, nil
	}
	return NewCollectionService(repo, validate, withID, normalize, nil)
}
