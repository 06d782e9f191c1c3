package content

import (
	"context"
	"fmt"

	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/interfaces"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
)

// Stores bundles every collection repository plus the brand repository, one
// per bucket, all sharing the same bucket store and cache.
type Stores struct {
	Departments       *Repository[content.Department]
	Achievements      *Repository[content.Achievement]
	Events            *Repository[content.Event]
	EventCategories   *Repository[content.EventCategory]
	Facilities        *Repository[content.Facility]
	Gallery           *Repository[content.GalleryImage]
	GalleryCategories *Repository[content.GalleryCategory]
	ExamRoutines      *Repository[content.ExamEntry]
	YearlyBooks       *Repository[content.YearlyBook]
	AcademicYears     *Repository[content.AcademicYear]
	Brand             *BrandRepository
}

// NewStores wires a repository for every bucket.
func NewStores(
	store bucket.Store,
	cache interfaces.CollectionCache,
	broadcaster *messaging.Broadcaster,
	feed *messaging.AdminFeed,
	logger *logging.ChanneledLogger,
) *Stores {
	return &Stores{
		Departments:       NewRepository(content.BucketDepartments, content.DefaultDepartments, store, cache, broadcaster, feed, logger),
		Achievements:      NewRepository(content.BucketAchievements, content.DefaultAchievements, store, cache, broadcaster, feed, logger),
		Events:            NewRepository(content.BucketEvents, content.DefaultEvents, store, cache, broadcaster, feed, logger),
		EventCategories:   NewRepository(content.BucketEventCategories, content.DefaultEventCategories, store, cache, broadcaster, feed, logger),
		Facilities:        NewRepository(content.BucketFacilities, content.DefaultFacilities, store, cache, broadcaster, feed, logger),
		Gallery:           NewRepository(content.BucketGallery, content.DefaultGalleryImages, store, cache, broadcaster, feed, logger),
		GalleryCategories: NewRepository(content.BucketGalleryCategories, content.DefaultGalleryCategories, store, cache, broadcaster, feed, logger),
		ExamRoutines:      NewRepository(content.BucketExamRoutines, content.DefaultExamEntries, store, cache, broadcaster, feed, logger),
		YearlyBooks:       NewRepository(content.BucketYearlyBooks, content.DefaultYearlyBooks, store, cache, broadcaster, feed, logger),
		AcademicYears:     NewRepository(content.BucketAvailableYears, content.DefaultAcademicYears, store, cache, broadcaster, feed, logger),
		Brand:             NewBrandRepository(store, cache, broadcaster, logger),
	}
}

// SeedAll loads every bucket once so missing or undecodable buckets get
// their defaults at startup, in CollectionBuckets order.
func (s *Stores) SeedAll(ctx context.Context) error {
	seeders := map[string]func(context.Context) error{
		content.BucketDepartments:       s.Departments.Seed,
		content.BucketAchievements:      s.Achievements.Seed,
		content.BucketEvents:            s.Events.Seed,
		content.BucketEventCategories:   s.EventCategories.Seed,
		content.BucketFacilities:        s.Facilities.Seed,
		content.BucketGallery:           s.Gallery.Seed,
		content.BucketGalleryCategories: s.GalleryCategories.Seed,
		content.BucketExamRoutines:      s.ExamRoutines.Seed,
		content.BucketYearlyBooks:       s.YearlyBooks.Seed,
		content.BucketAvailableYears:    s.AcademicYears.Seed,
	}

	for _, bucketKey := range content.CollectionBuckets {
		if err := seeders[bucketKey](ctx); err != nil {
			return fmt.Errorf("failed to seed %s: %w", bucketKey, err)
		}
	}

	if _, err := s.Brand.Load(ctx); err != nil {
		return fmt.Errorf("failed to seed %s: %w", content.BucketBrand, err)
	}
	return nil
}
