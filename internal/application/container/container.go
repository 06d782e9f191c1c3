// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/manager"
	"github.com/royalacademy/academy-go/internal/infrastructure/email"
	"github.com/royalacademy/academy-go/internal/infrastructure/media"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
	persistence "github.com/royalacademy/academy-go/internal/infrastructure/persistence/content"
	"github.com/royalacademy/academy-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Content services (stateless singletons)
	DepartmentService  *services.CollectionService[content.Department]
	AchievementService *services.CollectionService[content.Achievement]
	FacilityService    *services.CollectionService[content.Facility]
	EventsService      *services.EventsService
	GalleryService     *services.GalleryService
	ExamService        *services.ExamService
	YearbookService    *services.YearbookService
	BrandService       *services.BrandService
	AuthService        *services.AuthService
	ContactService     *services.ContactService

	// Infrastructure dependencies
	Logger         *logging.ChanneledLogger
	PerfTracker    *performance.Tracker
	CacheManager   *manager.Manager
	BucketStore    bucket.Store
	Broadcaster    *messaging.Broadcaster
	AdminFeed      *messaging.AdminFeed
	Stores         *persistence.Stores
	ImageProcessor *media.ImageProcessor
	EmailService   email.Service
}

// NewContainer creates and wires all singleton services
func NewContainer(store bucket.Store, cacheManager *manager.Manager, logger *logging.ChanneledLogger) *Container {
	perfTracker := performance.NewTracker(nil)
	broadcaster := messaging.NewBroadcaster(logger)
	adminFeed := messaging.NewAdminFeed(cacheManager, broadcaster, perfTracker, logger)
	stores := persistence.NewStores(store, cacheManager.Collections(), broadcaster, adminFeed, logger)
	imageProcessor := media.NewImageProcessor(int64(config.MaxImageBytes), config.MaxImageDimension, logger)

	// Email is optional: without a Resend key the contact endpoint degrades
	// to a clean failure instead of blocking startup.
	emailService, err := email.NewService(logger)
	if err != nil {
		logger.Email().Warn("Email service disabled", "reason", err.Error())
		emailService = nil
	}

	return &Container{
		DepartmentService:  services.NewDepartmentService(stores.Departments),
		AchievementService: services.NewAchievementService(stores.Achievements),
		FacilityService:    services.NewFacilityService(stores.Facilities, imageProcessor),
		EventsService:      services.NewEventsService(stores.Events, stores.EventCategories, imageProcessor),
		GalleryService:     services.NewGalleryService(stores.Gallery, stores.GalleryCategories, imageProcessor),
		ExamService:        services.NewExamService(stores.ExamRoutines),
		YearbookService:    services.NewYearbookService(stores.YearlyBooks, stores.AcademicYears, imageProcessor),
		BrandService:       services.NewBrandService(stores.Brand, imageProcessor),
		AuthService:        services.NewAuthService(logger),
		ContactService:     services.NewContactService(emailService),

		Logger:         logger,
		PerfTracker:    perfTracker,
		CacheManager:   cacheManager,
		BucketStore:    store,
		Broadcaster:    broadcaster,
		AdminFeed:      adminFeed,
		Stores:         stores,
		ImageProcessor: imageProcessor,
		EmailService:   emailService,
	}
}
