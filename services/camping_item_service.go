package services

import (
	stderrors "errors"

	"gorm.io/gorm"

	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

type CampingItemService struct {
	db *gorm.DB
}

func NewCampingItemService(db *gorm.DB) *CampingItemService {
	return &CampingItemService{db: db}
}

func (s *CampingItemService) List() ([]models.CampingItem, error) {
	var items []models.CampingItem
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	return items, nil
}

func (s *CampingItemService) GetByID(id uint) (*models.CampingItem, error) {
	var item models.CampingItem
	if err := s.db.First(&item, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFound("Camping item not found")
		}
		return nil, errors.NewInternal(err)
	}
	return &item, nil
}

func (s *CampingItemService) Create(req dto.CreateCampingItemRequest) (*models.CampingItem, error) {
	item := models.CampingItem{
		Name:        req.Name,
		Category:    req.Category,
		Size:        req.Size,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	return &item, nil
}

func (s *CampingItemService) Update(id uint, req dto.UpdateCampingItemRequest) (*models.CampingItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	return s.GetByID(id)
}

// Delete removes the item unless it is attached to a booking in a
// protected status.
func (s *CampingItemService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var activeItems int64
	err := s.db.Model(&models.BookingItem{}).
		Joins("JOIN bookings ON bookings.id = booking_items.booking_id").
		Where("booking_items.camping_item_id = ? AND bookings.status IN ?", id, constants.ProtectedBookingStatuses).
		Count(&activeItems).Error
	if err != nil {
		return errors.NewInternal(err)
	}
	if activeItems > 0 {
		return errors.NewBadRequest(errors.ErrCodeActiveBookings,
			"Camping-Item kann nicht gelöscht werden, solange aktive Buchungen existieren.")
	}

	if err := s.db.Delete(&models.CampingItem{}, id).Error; err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
