package services

import (
	"context"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/domain/validation"
	"github.com/royalacademy/academy-go/internal/infrastructure/media"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
)

// BrandService manages the single site-wide brand configuration object.
type BrandService struct {
	repo   *persistence.BrandRepository
	images *media.ImageProcessor
}

// NewBrandService creates the brand configuration service.
func NewBrandService(repo *persistence.BrandRepository, images *media.ImageProcessor) *BrandService {
	return &BrandService{repo: repo, images: images}
}

// Get returns the current brand config, seeded on first access.
func (s *BrandService) Get(ctx context.Context) (content.BrandConfig, error) {
	return s.repo.Load(ctx)
}

// Update fully replaces the brand config. The logo passes through the image
// processor like every other inline image.
func (s *BrandService) Update(ctx context.Context, brand content.BrandConfig) (content.BrandConfig, error) {
	if err := validation.Required("schoolName", brand.SchoolName); err != nil {
		return content.BrandConfig{}, &collection.ValidationError{Field: "schoolName", Reason: "is required"}
	}

	if brand.Logo != "" {
		normalized, err := s.images.NormalizeDataURL(brand.Logo)
		if err != nil {
			return content.BrandConfig{}, &collection.ValidationError{Field: "logo", Reason: err.Error()}
		}
		brand.Logo = normalized
	}

	if err := s.repo.Save(ctx, brand); err != nil {
		return content.BrandConfig{}, err
	}
	return brand, nil
}
