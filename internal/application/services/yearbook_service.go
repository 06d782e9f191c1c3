package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/domain/validation"
	"github.com/royalacademy/academy-go/internal/infrastructure/media"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
)

// YearbookService pairs the downloadable book list with the selectable
// academic years. Removing a year is refused while books still cite it.
type YearbookService struct {
	Books *CollectionService[content.YearlyBook]
	Years *CollectionService[content.AcademicYear]
}

// NewYearbookService wires the book and academic-year services.
func NewYearbookService(
	bookRepo *persistence.Repository[content.YearlyBook],
	yearRepo *persistence.Repository[content.AcademicYear],
	images *media.ImageProcessor,
) *YearbookService {
	validateBook := func(b content.YearlyBook) error {
		if err := validation.Required("title", b.Title); err != nil {
			return &collection.ValidationError{Field: "title", Reason: "is required"}
		}
		if err := validation.AcademicYear(b.Year); err != nil {
			return &collection.ValidationError{Field: "year", Reason: err.Error()}
		}
		if err := validation.URL(b.URL); err != nil {
			return &collection.ValidationError{Field: "url", Reason: err.Error()}
		}
		if err := validation.SchoolClass(b.Class); err != nil {
			return &collection.ValidationError{Field: "class", Reason: err.Error()}
		}
		return nil
	}
	bookWithID := func(b content.YearlyBook, id string) content.YearlyBook {
		b.ID = id
		return b
	}
	normalizeBook := func(_ context.Context, b content.YearlyBook) (content.YearlyBook, error) {
		if b.Cover != "" {
			normalized, err := images.NormalizeDataURL(b.Cover)
			if err != nil {
				return b, &collection.ValidationError{Field: "cover", Reason: err.Error()}
			}
			b.Cover = normalized
		}
		return b, nil
	}

	validateYear := func(y content.AcademicYear) error {
		if err := validation.AcademicYear(y.Year); err != nil {
			return &collection.ValidationError{Field: "year", Reason: err.Error()}
		}
		return nil
	}
	yearWithID := func(y content.AcademicYear, id string) content.AcademicYear {
		y.ID = id
		return y
	}

	s := &YearbookService{}
	s.Books = NewCollectionService(bookRepo, validateBook, bookWithID, normalizeBook, nil)
	s.Years = NewCollectionService(yearRepo, validateYear, yearWithID, nil, s.guardYearDelete)
	return s
}

func (s *YearbookService) guardYearDelete(ctx context.Context, victim content.AcademicYear) error {
	books, err := s.Books.GetAll(ctx)
	if err != nil {
		return err
	}

	referencing := 0
	for _, b := range books {
		if b.Year == victim.Year {
			referencing++
		}
	}
	if referencing > 0 {
		return fmt.Errorf("year %q used by %d books: %w", victim.Year, referencing, ErrStillReferenced)
	}
	return nil
}

// GetByYear returns the books for one academic year, grouped by class in
// ascending class order and keeping the stored order within a class.
func (s *YearbookService) GetByYear(ctx context.Context, year string) ([]content.YearlyBook, error) {
	if err := validation.AcademicYear(year); err != nil {
		return nil, &collection.ValidationError{Field: "year", Reason: err.Error()}
	}

	books, err := s.Books.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]content.YearlyBook, 0, len(books))
	for _, b := range books {
		if b.Year == year {
			matched = append(matched, b)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return classRank(matched[i].Class) < classRank(matched[j].Class)
	})
	return matched, nil
}

// classRank orders ClassAll first, then classes numerically.
func classRank(class string) int {
	if class == content.ClassAll {
		return 0
	}
	rank := 0
	for _, r := range class {
		rank = rank*10 + int(r-'0')
	}
	return rank
}
