package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campsite/config"
	"campsite/jobs"
	"campsite/routes"
	"campsite/services"
)

func main() {

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	broadcaster := services.NewBroadcaster(m)
	defer broadcaster.Close()

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB: config.DB,
	})
	jobs.SetBookingCompleter(bookingService)

	if err := jobs.InitCronJobs(c, broadcaster); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, broadcaster)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnvDefault("PORT", "3001")

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
