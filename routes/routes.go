package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hotelops/controllers"
	"hotelops/metrics"
	"hotelops/middleware"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Guest        *controllers.GuestController
	Booking      *controllers.BookingController
	Document     *controllers.DocumentController
	Notification *controllers.NotificationController
	Health       *controllers.HealthController
}

// Options carries the router's cross-cutting dependencies. /metrics is only
// mounted when Gatherer is set.
type Options struct {
	CORSOrigins string
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func corsConfig(raw string) cors.Config {
	origins := parseCorsOrigins(raw)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires the controllers onto a gin engine.
func SetupRouter(ctl Controllers, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/", ctl.Health.Root)
	r.GET("/test", ctl.Health.TestDatabase)
	r.GET("/health", ctl.Health.Health)
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	})

	api := r.Group("/api")
	{
		api.POST("/ocr", ctl.Document.ExtractDocument)

		guests := api.Group("/guests")
		{
			guests.GET("", ctl.Guest.GetGuests)
			guests.POST("", ctl.Guest.CreateGuest)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctl.Booking.GetBookings)
			bookings.POST("", ctl.Booking.CreateBooking)
		}

		api.POST("/notify", ctl.Notification.SendNotification)
	}

	return r
}
