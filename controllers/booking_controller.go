package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campsite/dto"
	"campsite/middleware"
	"campsite/response"
	"campsite/services"
)

type BookingController struct {
	service     *services.BookingService
	analytics   *services.AnalyticsService
	broadcaster *services.Broadcaster
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, b *services.Broadcaster) *BookingController {
	return &BookingController{
		service: services.NewBookingService(services.BookingServiceOptions{
			DB: db,
		}),
		analytics:   services.NewAnalyticsService(db, rdb),
		broadcaster: b,
	}
}

func (ctl *BookingController) List(c *gin.Context) {
	filters := dto.BookingFilters{
		Status: c.Query("status"),
	}
	if raw := c.Query("campingPlaceId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Ungültige ID.")
			return
		}
		id := uint(parsed)
		filters.CampingPlaceID = &id
	}

	bookings, err := ctl.service.List(filters)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (ctl *BookingController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	booking, err := ctl.service.GetByID(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, booking)
}

func (ctl *BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.service.Create(req, middleware.EmployeeIDFromContext(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, booking)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Created(services.EntityBookings, booking)
}

func (ctl *BookingController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.service.Update(id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, booking)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Updated(services.EntityBookings, booking)
}

func (ctl *BookingController) Delete(c *gin.Context) {
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
	ctl.broadcaster.Deleted(services.EntityBookings, id)
}

func (ctl *BookingController) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := ctl.service.ChangeStatus(id, req.Status, middleware.EmployeeIDFromContext(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, booking)
	ctl.analytics.InvalidateCache()
	ctl.broadcaster.Updated(services.EntityBookings, booking)
}

func (ctl *BookingController) GetStatusChanges(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	changes, err := ctl.service.GetStatusChanges(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, changes)
}

func (ctl *BookingController) GetItems(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := ctl.service.GetItems(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, items)
}

func (ctl *BookingController) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.BookingItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := ctl.service.AddItem(id, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, item)
	ctl.analytics.InvalidateCache()
	ctl.broadcastBookingUpdate(id)
}

func (ctl *BookingController) RemoveItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	if err := ctl.service.RemoveItem(id, itemID); err != nil {
		response.HandleError(c, err)
		return
	}

	response.NoContent(c)
	ctl.analytics.InvalidateCache()
	ctl.broadcastBookingUpdate(id)
}

// broadcastBookingUpdate reloads the booking so listeners get the full
// entity after a nested item mutation.
func (ctl *BookingController) broadcastBookingUpdate(id uint) {
	booking, err := ctl.service.GetByID(id)
	if err != nil {
		return
	}
	ctl.broadcaster.Updated(services.EntityBookings, booking)
}
