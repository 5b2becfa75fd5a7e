package api

import (
	"log"
	stdhttp "net/http"

	intconfig "shuttlelink/internal/config"
	h "shuttlelink/internal/http/handlers"
	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/realtime"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hub *realtime.Hub) *gin.Engine {
	h.Configure(hub, []byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := services.AuthService{Secret: []byte(env.JWTSecret)}
	authed := middleware.Auth(auth)

	r.GET("/ws", h.WS)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		ag := api.Group("/auth")
		ag.POST("/login", h.Login)
		ag.POST("/register", h.Register)

		cities := api.Group("/cities")
		cities.GET("", h.GetCities)
		cities.POST("", authed, middleware.RequireRole("admin"), h.CreateCity)

		routes := api.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.GET("/:id", h.GetRouteByID)
		routes.GET("/:id/stops", h.GetRouteStops)

		schedules := api.Group("/schedules")
		schedules.POST("/search", h.SearchSchedules)
		schedules.GET("/:id", h.GetScheduleByID)
		schedules.GET("/:id/seats", h.GetScheduleSeats)
		schedules.GET("/:id/bookings", authed, middleware.RequireRole("driver"), h.GetScheduleBookings)

		passengers := api.Group("/passengers")
		passengers.POST("", h.CreatePassenger)
		passengers.GET("/:id/bookings", h.GetPassengerBookings)

		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.PATCH("/:id/payment", h.UpdateBookingPayment)
		bookings.PATCH("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/e-ticket", h.GetBookingETicketPDF)

		tracking := api.Group("/tracking")
		tracking.POST("", authed, middleware.RequireRole("driver"), h.RecordTracking)
		tracking.GET("/:scheduleId", h.GetTrackingHistory)

		api.POST("/feedback", h.SubmitFeedback)

		sms := api.Group("/sms-codes")
		sms.GET("", h.GetSmsCodes)
		sms.GET("/:code", h.GetSmsCodeByCode)

		admin := api.Group("/admin", authed, middleware.RequireRole("admin"))
		admin.GET("/dashboard", h.GetDashboard)
		admin.GET("/bookings", h.GetAllBookings)
		admin.GET("/feedback", h.GetAllFeedback)
		admin.GET("/vehicles", h.GetVehicles)
		admin.GET("/drivers", h.GetDrivers)
	}

	return r
}
