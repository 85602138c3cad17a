package services

import (
	stderrors "errors"

	"gorm.io/gorm"

	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

// CampingPlaceService covers CRUD on camping places including the
// active-booking delete guard.
type CampingPlaceService struct {
	db *gorm.DB
}

func NewCampingPlaceService(db *gorm.DB) *CampingPlaceService {
	return &CampingPlaceService{db: db}
}

func (s *CampingPlaceService) List() ([]models.CampingPlace, error) {
	var places []models.CampingPlace
	if err := s.db.Order("created_at DESC").Find(&places).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	return places, nil
}

func (s *CampingPlaceService) GetByID(id uint) (*models.CampingPlace, error) {
	var place models.CampingPlace
	if err := s.db.First(&place, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFound("Camping place not found")
		}
		return nil, errors.NewInternal(err)
	}
	return &place, nil
}

func (s *CampingPlaceService) Create(req dto.CreateCampingPlaceRequest) (*models.CampingPlace, error) {
	place := models.CampingPlace{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Size:        req.Size,
		Price:       req.Price,
		IsActive:    true,
	}
	if req.Amenities != nil {
		place.Amenities = *req.Amenities
	}
	if req.IsActive != nil {
		place.IsActive = *req.IsActive
	}

	if err := s.db.Create(&place).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	return &place, nil
}

func (s *CampingPlaceService) Update(id uint, req dto.UpdateCampingPlaceRequest) (*models.CampingPlace, error) {
	place, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Amenities != nil {
		updates["amenities"] = *req.Amenities
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(place).Updates(updates).Error; err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	return s.GetByID(id)
}

// Delete removes the place unless a booking in a protected status still
// references it.
func (s *CampingPlaceService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var activeBookings int64
	err := s.db.Model(&models.Booking{}).
		Where("camping_place_id = ? AND status IN ?", id, constants.ProtectedBookingStatuses).
		Count(&activeBookings).Error
	if err != nil {
		return errors.NewInternal(err)
	}
	if activeBookings > 0 {
		return errors.NewBadRequest(errors.ErrCodeActiveBookings,
			"Stellplatz kann nicht gelöscht werden, solange aktive Buchungen existieren.")
	}

	if err := s.db.Delete(&models.CampingPlace{}, id).Error; err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
