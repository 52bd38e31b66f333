package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking-api/internal/audit"
	"github.com/BruksfildServices01/barber-booking-api/internal/cache"
	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
	"github.com/BruksfildServices01/barber-booking-api/internal/config"
	"github.com/BruksfildServices01/barber-booking-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking-api/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking-api/internal/middleware"
	"github.com/BruksfildServices01/barber-booking-api/internal/square"
	ucBooking "github.com/BruksfildServices01/barber-booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	squareClient := square.NewClient(cfg.SquareToken, cfg.SquareVersion, logger)
	catalogCache := cache.New(rdb, cfg.CatalogCacheTTL)
	locationDir := ucBooking.NewLocationDirectory(squareClient, catalogCache)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		squareClient,
		locationDir,
		auditDispatcher,
		cfg.SquareTeamMemberID,
	)

	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		squareClient,
		locationDir,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		squareClient,
		locationDir,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo, locationDir)

	quoteUC := ucBooking.NewCancellationQuote(bookingRepo, locationDir)

	listServicesUC := ucBooking.NewListServices(
		squareClient,
		locationDir,
		catalogCache,
		catalog.PresenceDefaultAll,
	)

	availabilityUC := ucBooking.NewGetAvailability(squareClient, locationDir)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		rescheduleBookingUC,
		cancelBookingUC,
		listBookingsUC,
		quoteUC,
	)

	catalogHandler := handlers.NewCatalogHandler(listServicesUC, locationDir)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/locations", catalogHandler.ListLocations)
		api.GET("/availability", availabilityHandler.Get)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id", bookingHandler.Reschedule)
			secured.DELETE("/me/bookings/:id", bookingHandler.Cancel)
			secured.GET("/me/bookings/:id/cancellation-quote", bookingHandler.CancellationQuote)
		}
	}
}
