package services

import (
	"context"
	"errors"
	"testing"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/stores"
	"github.com/royalacademy/academy-go/internal/infrastructure/media"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
	"github.com/stretchr/testify/require"
)

func newYearbookService(t *testing.T) *YearbookService {
	t.Helper()
	logger := newTestLogger(t)
	broadcaster := messaging.NewBroadcaster(logger)
	store := bucket.NewMemoryStore()

	bookRepo := persistence.NewRepository(
		content.BucketYearlyBooks, content.DefaultYearlyBooks,
		store, stores.NewCollectionStore(), broadcaster, nil, logger)
	yearRepo := persistence.NewRepository(
		content.BucketAvailableYears, content.DefaultAcademicYears,
		store, stores.NewCollectionStore(), broadcaster, nil, logger)
	images := media.NewImageProcessor(4*1024*1024, 1920, logger)

	return NewYearbookService(bookRepo, yearRepo, images)
}

func TestBookValidation(t *testing.T) {
	s := newYearbookService(t)

	cases := []struct {
		name string
		book content.YearlyBook
	}{
		{"bad year", content.YearlyBook{Title: "x", Year: "2024-2026", Class: "5", URL: "https://example.com/b.pdf"}},
		{"relative url", content.YearlyBook{Title: "x", Year: "2024-2025", Class: "5", URL: "books/b.pdf"}},
		{"bad class", content.YearlyBook{Title: "x", Year: "2024-2025", Class: "12", URL: "https://example.com/b.pdf"}},
		{"missing title", content.YearlyBook{Year: "2024-2025", Class: "5", URL: "https://example.com/b.pdf"}},
	}
	for _, tc := range cases {
		if _, err := s.Books.Create(context.Background(), tc.book); err == nil {
			t.Errorf("%s: invalid book accepted", tc.name)
		} else if !collection.IsValidationError(err) {
			t.Errorf("%s: got %T, want ValidationError", tc.name, err)
		}
	}
}

func TestGetByYearGroupsByClass(t *testing.T) {
	s := newYearbookService(t)

	books := []content.YearlyBook{
		{ID: "b-c10", Year: "2025-2026", Class: "10", Title: "Physics", URL: "https://example.com/p.pdf"},
		{ID: "b-all", Year: "2025-2026", Class: content.ClassAll, Title: "School diary", URL: "https://example.com/d.pdf"},
		{ID: "b-c2", Year: "2025-2026", Class: "2", Title: "Bangla reader", URL: "https://example.com/b.pdf"},
		{ID: "b-old", Year: "2024-2025", Class: "2", Title: "Old reader", URL: "https://example.com/o.pdf"},
	}
	require.NoError(t, s.Books.ReplaceAll(context.Background(), books))

	got, err := s.GetByYear(context.Background(), "2025-2026")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"b-all", "b-c2", "b-c10"}, []string{got[0].ID, got[1].ID, got[2].ID})

	_, err = s.GetByYear(context.Background(), "not-a-year")
	require.Error(t, err)
}

func TestDeleteReferencedYearRefused(t *testing.T) {
	s := newYearbookService(t)

	years, err := s.Years.GetAll(context.Background())
	require.NoError(t, err)

	// The seeded book cites 2024-2025.
	var citedID string
	for _, y := range years {
		if y.Year == "2024-2025" {
			citedID = y.ID
		}
	}
	require.NotEmpty(t, citedID)

	err = s.Years.Delete(context.Background(), citedID)
	require.True(t, errors.Is(err, ErrStillReferenced))
}

func TestYearValidation(t *testing.T) {
	s := newYearbookService(t)

	_, err := s.Years.Create(context.Background(), content.AcademicYear{Year: "2030-2032"})
	require.Error(t, err)

	created, err := s.Years.Create(context.Background(), content.AcademicYear{Year: "2030-2031"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ItemID())
}
