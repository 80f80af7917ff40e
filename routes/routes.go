package routes

import (
	"time"

	"ziaclinic/handlers"
	"ziaclinic/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/date/:date", hb.ListAppointmentsByDateHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.POST("", hb.CreateAppointmentHandler)
		api.PATCH("/:id", hb.UpdateAppointmentHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.GET("", hb.ListPaymentsHandler)
		api.GET("/:id", hb.GetPaymentHandler)
		api.POST("", hb.CreatePaymentHandler)
		api.PATCH("/:id", hb.UpdatePaymentHandler)
		api.DELETE("/:id", hb.DeletePaymentHandler)
	}
}

// RegisterHealthRoutes registers the root banner, health check and favicon stubs.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthCheckHandler)
	r.GET("/favicon.ico", hb.FaviconHandler)
	r.GET("/favicon.png", hb.FaviconHandler)
	r.GET("/favicon", hb.FaviconHandler)
}

// CORSMiddleware allows credentialed requests from allowedOrigins only.
// Requests from any other origin are refused with 403.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(CORSMiddleware(allowedOrigins))
	r.Use(gzip.Gzip(gzip.BestSpeed))

	RegisterHealthRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
