package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campsite/controllers"
	middlewares "campsite/middleware"
	"campsite/services"
)

// SetupRoutes wires the REST surface and the push channel. Everything
// except signup/login sits behind the bearer-token middleware.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, broadcaster *services.Broadcaster) {

	authController := controllers.NewAuthController(db)
	placeController := controllers.NewCampingPlaceController(db, redisCli, broadcaster)
	itemController := controllers.NewCampingItemController(db, redisCli, broadcaster)
	bookingController := controllers.NewBookingController(db, redisCli, broadcaster)
	analyticsController := controllers.NewAnalyticsController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/signup", authController.Signup)
	v1.POST("/auth/login", authController.Login)
	v1.GET("/auth/me", middlewares.AuthMiddleware(), authController.Me)

	places := v1.Group("/camping-places", middlewares.AuthMiddleware())
	places.GET("", placeController.List)
	places.GET("/search", placeController.Search)
	places.GET("/:id", placeController.GetByID)
	places.POST("", placeController.Create)
	places.PATCH("/:id", placeController.Update)
	places.DELETE("/:id", placeController.Delete)

	items := v1.Group("/camping-items", middlewares.AuthMiddleware())
	items.GET("", itemController.List)
	items.GET("/:id", itemController.GetByID)
	items.POST("", itemController.Create)
	items.PATCH("/:id", itemController.Update)
	items.DELETE("/:id", itemController.Delete)

	bookings := v1.Group("/bookings", middlewares.AuthMiddleware())
	bookings.GET("", bookingController.List)
	bookings.GET("/:id", bookingController.GetByID)
	bookings.POST("", bookingController.Create)
	bookings.PATCH("/:id", bookingController.Update)
	bookings.DELETE("/:id", bookingController.Delete)
	bookings.POST("/:id/status", bookingController.ChangeStatus)
	bookings.GET("/:id/status-changes", bookingController.GetStatusChanges)
	bookings.GET("/:id/items", bookingController.GetItems)
	bookings.POST("/:id/items", bookingController.AddItem)
	bookings.DELETE("/:id/items/:itemId", bookingController.RemoveItem)

	v1.GET("/analytics", middlewares.AuthMiddleware(), analyticsController.GetSummary)

	// Push channel. Browsers cannot set headers on the upgrade request,
	// the token is verified from the query string instead.
	router.GET("/ws", middlewares.WebSocketAuthMiddleware(), func(c *gin.Context) {
		broadcaster.HandleRequest(c.Writer, c.Request)
	})
}
