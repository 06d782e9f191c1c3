// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/container"
	"github.com/royalacademy/academy-go/internal/presentation/http/handlers"
	"github.com/royalacademy/academy-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	departmentHandlers := handlers.NewCollectionHandlers("departments", c.DepartmentService, c.Logger, c.PerfTracker)
	achievementHandlers := handlers.NewCollectionHandlers("achievements", c.AchievementService, c.Logger, c.PerfTracker)
	facilityHandlers := handlers.NewCollectionHandlers("facilities", c.FacilityService, c.Logger, c.PerfTracker)
	eventHandlers := handlers.NewCollectionHandlers("events", c.EventsService.Events, c.Logger, c.PerfTracker)
	eventCategoryHandlers := handlers.NewCollectionHandlers("event-categories", c.EventsService.Categories, c.Logger, c.PerfTracker)
	galleryHandlers := handlers.NewCollectionHandlers("gallery", c.GalleryService.Images, c.Logger, c.PerfTracker)
	galleryCategoryHandlers := handlers.NewCollectionHandlers("gallery-categories", c.GalleryService.Categories, c.Logger, c.PerfTracker)
	examRoutineHandlers := handlers.NewCollectionHandlers("exam-routines", c.ExamService.CollectionService, c.Logger, c.PerfTracker)
	yearlyBookHandlers := handlers.NewCollectionHandlers("yearly-books", c.YearbookService.Books, c.Logger, c.PerfTracker)
	academicYearHandlers := handlers.NewCollectionHandlers("available-years", c.YearbookService.Years, c.Logger, c.PerfTracker)

	domainHandlers := handlers.NewDomainHandlers(c.EventsService, c.GalleryService, c.YearbookService, c.Logger, c.PerfTracker)
	examHandlers := handlers.NewExamHandlers(c.ExamService, c.Logger, c.PerfTracker)
	brandHandlers := handlers.NewBrandHandlers(c.BrandService, c.Logger, c.PerfTracker)
	subscribeHandlers := handlers.NewSubscribeHandlers(c.Broadcaster, c.Logger, c.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(c.AuthService, c.Logger, c.PerfTracker)
	contactHandlers := handlers.NewContactHandlers(c.ContactService, c.Logger, c.PerfTracker)
	adminFeedHandlers := handlers.NewAdminFeedHandlers(c.AdminFeed, c.AuthService, c.Logger)
	healthHandlers := handlers.NewHealthHandlers(c.CacheManager, c.Broadcaster, c.Logger, c.PerfTracker)

	r.GET("/health", healthHandlers.Health)

	api := r.Group("/api/v1")

	// Auth endpoints
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandlers.Login)
		auth.GET("/status", authHandlers.Status)
	}

	// Public content reads plus the live subscription stream.
	public := api.Group("/content")
	{
		public.GET("/subscribe", subscribeHandlers.Subscribe)
		public.GET("/brand", brandHandlers.Get)
		public.GET("/events/published", domainHandlers.GetPublishedEvents)
		public.GET("/gallery/by-category/:name", domainHandlers.GetGalleryByCategory)
		public.GET("/yearly-books/by-year/:year", domainHandlers.GetBooksByYear)
		public.GET("/exam-routines/routine", examHandlers.GetRoutine)
		public.GET("/exam-routines/calendar", examHandlers.GetMonthGrid)
	}

	// Mutating content routes require an admin token.
	admin := api.Group("/content")
	admin.Use(middleware.AdminAuthMiddleware(c.AuthService))
	{
		admin.PUT("/brand", brandHandlers.Update)
	}

	departmentHandlers.Register(public, admin)
	achievementHandlers.Register(public, admin)
	facilityHandlers.Register(public, admin)
	eventHandlers.Register(public, admin)
	eventCategoryHandlers.Register(public, admin)
	galleryHandlers.Register(public, admin)
	galleryCategoryHandlers.Register(public, admin)
	examRoutineHandlers.Register(public, admin)
	yearlyBookHandlers.Register(public, admin)
	academicYearHandlers.Register(public, admin)

	// Contact enquiries
	api.POST("/contact", contactHandlers.Send)

	// Admin dashboard: live feed and operational status.
	adminAPI := api.Group("/admin")
	{
		adminAPI.GET("/feed", adminFeedHandlers.Connect)
		adminAPI.GET("/status", middleware.AdminAuthMiddleware(c.AuthService), healthHandlers.Status)
	}

	return r
}
