package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/vinchivii/book-savvy-studio/internal/audit"
	"github.com/vinchivii/book-savvy-studio/internal/cache"
	"github.com/vinchivii/book-savvy-studio/internal/config"
	"github.com/vinchivii/book-savvy-studio/internal/handlers"
	infraRepo "github.com/vinchivii/book-savvy-studio/internal/infra/repository"
	"github.com/vinchivii/book-savvy-studio/internal/middleware"
	"github.com/vinchivii/book-savvy-studio/internal/payment"
	ucBooking "github.com/vinchivii/book-savvy-studio/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	payments payment.Provider,
	cfg *config.Config,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.NewSlotCache(rdb, cfg.SlotCacheTTL())

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.Buffer(),
		cfg.MinLeadTime(),
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		payments,
		auditDispatcher,
		cfg.Buffer(),
		cfg.MinLeadTime(),
	)

	confirmPaymentUC := ucBooking.NewConfirmPayment(
		bookingRepo,
		payments,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(
		bookingRepo,
	)

	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	creatorHandler := handlers.NewCreatorHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, slotCache)
	availabilityHandler := handlers.NewAvailabilityHandler(db, slotCache)
	timeOffHandler := handlers.NewTimeOffHandler(db, slotCache)
	clientHandler := handlers.NewClientHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		slotCache,
		cancelBookingUC,
		completeBookingUC,
		listBookingsByDateUC,
		listBookingsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		slotCache,
		getAvailabilityUC,
		createBookingUC,
	)

	webhookHandler := handlers.NewWebhookHandler(confirmPaymentUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetCreatorPage)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// PAYMENT WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/payment", webhookHandler.Payment)

		// ------------------------------
		// MANAGEMENT API
		// ------------------------------
		creators := api.Group("/creators/:creatorId")
		{
			creators.GET("/profile", creatorHandler.Get)
			creators.PATCH("/profile", creatorHandler.Update)

			creators.GET("/services", serviceHandler.List)
			creators.POST("/services", serviceHandler.Create)
			creators.PATCH("/services/:id", serviceHandler.Update)

			creators.GET("/availability", availabilityHandler.Get)
			creators.PUT("/availability", availabilityHandler.Update)

			creators.GET("/time-off", timeOffHandler.List)
			creators.POST("/time-off", timeOffHandler.Create)
			creators.DELETE("/time-off/:id", timeOffHandler.Delete)

			creators.GET("/clients", clientHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			creators.GET("/bookings", bookingHandler.ListByDate)
			creators.GET("/bookings/month", bookingHandler.ListByMonth)
			creators.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			creators.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			creators.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
