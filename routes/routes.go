package routes

import (
	"net/http"
	"time"

	"infibot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", hb.CreateSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.POST("/session/:sessionID/message", hb.PostMessage)
		api.POST("/session/:sessionID/book", hb.BookEvent)
		api.POST("/session/:sessionID/quantity", hb.SelectQuantity)
		api.POST("/session/:sessionID/user-info", hb.SubmitUserInfo)
		api.DELETE("/session/:sessionID", hb.DeleteSession)
	}
}

// RegisterBookingRoutes registers read access to persisted bookings.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/:id", hb.GetBooking)
		api.GET("/user/:userID", hb.GetUserBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm InfiBot"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// assetDir, when non-empty, is served under /assets for locally stored
// tickets.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, assetDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)

	if assetDir != "" {
		r.Static("/assets", assetDir)
	}
}
