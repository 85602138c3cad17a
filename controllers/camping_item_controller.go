package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campsite/dto"
	"campsite/response"
	"campsite/services"
)

type CampingItemController struct {
	service     *services.CampingItemService
	analytics   *services.AnalyticsService
	broadcaster *services.Broadcaster
}

func NewCampingItemController(db *gorm.DB, rdb *redis.Client, b *services.Broadcaster) *CampingItemController {
	return &CampingItemController{
		service:     services.NewCampingItemService(db),
		analytics:   services.NewAnalyticsService(db, rdb),
		broadcaster: b,
	}
}

func (ctl *CampingItemController) List(c *gin.Context) {
	items, err := ctl.service.List()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, items)
}

func (ctl *CampingItemController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := ctl.service.GetByID(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, item)
}

func (ctl *CampingItemController) Create(c *gin.Context) {
	var req dto.CreateCampingItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := ctl.service.Create(req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, item)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Created(services.EntityCampingItems, item)
}

func (ctl *CampingItemController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCampingItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := ctl.service.Update(id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, item)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Updated(services.EntityCampingItems, item)
}

func (ctl *CampingItemController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ctl.service.Delete(id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Deleted(services.EntityCampingItems, id)
}
