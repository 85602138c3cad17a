package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campsite/response"
	"campsite/services"
)

type AnalyticsController struct {
	service *services.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB, rdb *redis.Client) *AnalyticsController {
	return &AnalyticsController{service: services.NewAnalyticsService(db, rdb)}
}

func (ctl *AnalyticsController) GetSummary(c *gin.Context) {
	summary, err := ctl.service.GetSummary()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, summary)
}
