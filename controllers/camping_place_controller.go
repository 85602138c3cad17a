package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campsite/dto"
	"campsite/response"
	"campsite/services"
)

type CampingPlaceController struct {
	service     *services.CampingPlaceService
	search      *services.SearchService
	analytics   *services.AnalyticsService
	broadcaster *services.Broadcaster
}

func NewCampingPlaceController(db *gorm.DB, rdb *redis.Client, b *services.Broadcaster) *CampingPlaceController {
	return &CampingPlaceController{
		service:     services.NewCampingPlaceService(db),
		search:      services.NewSearchService(db),
		analytics:   services.NewAnalyticsService(db, rdb),
		broadcaster: b,
	}
}

func (ctl *CampingPlaceController) List(c *gin.Context) {
	places, err := ctl.service.List()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, places)
}

func (ctl *CampingPlaceController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	place, err := ctl.service.GetByID(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, place)
}

func (ctl *CampingPlaceController) Search(c *gin.Context) {
	results, err := ctl.search.Search(c.Query("q"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, results)
}

func (ctl *CampingPlaceController) Create(c *gin.Context) {
	var req dto.CreateCampingPlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	place, err := ctl.service.Create(req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, place)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Created(services.EntityCampingPlaces, place)
}

func (ctl *CampingPlaceController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCampingPlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	place, err := ctl.service.Update(id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, place)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Updated(services.EntityCampingPlaces, place)
}

func (ctl *CampingPlaceController) Delete(c *gin.Context) {
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
	ctl.broadcaster.Deleted(services.EntityCampingPlaces, id)
}
