package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
	"campsite/services/logger"
	"campsite/validator"
)

// BookingService owns the booking lifecycle: CRUD, status changes with
// their audit trail, and the nested booking items. Every multi-step write
// runs in a single transaction.
type BookingService struct {
	db  *gorm.DB
	log logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{db: opts.DB, log: l}
}

// withBookingRelations preloads everything a booking response embeds.
func withBookingRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CampingPlace").
		Preload("BookingItems.CampingItem").
		Preload("StatusChanges", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		}).
		Preload("StatusChanges.Employee")
}

func (s *BookingService) List(filters dto.BookingFilters) ([]models.Booking, error) {
	tx := withBookingRelations(s.db).Order("created_at DESC")
	if filters.CampingPlaceID != nil {
		tx = tx.Where("camping_place_id = ?", *filters.CampingPlaceID)
	}
	if filters.Status != "" {
		tx = tx.Where("status = ?", filters.Status)
	}

	var bookings []models.Booking
	if err := tx.Find(&bookings).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := withBookingRelations(s.db).First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFound("Booking not found")
		}
		return nil, errors.NewInternal(err)
	}
	return &booking, nil
}

// parseOptionalDate maps an absent pointer to nil and an empty string to
// nil as well, so PATCH bodies can clear a date with "".
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := validator.ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create validates the referenced place and items, recomputes the total
// price and persists booking, item rows and the initial status change
// atomically.
func (s *BookingService) Create(req dto.CreateBookingRequest, employeeID *uint) (*models.Booking, error) {
	var place models.CampingPlace
	if err := s.db.First(&place, req.CampingPlaceID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewBadRequest(errors.ErrCodeMissingRelation, "Stellplatz existiert nicht.")
		}
		return nil, errors.NewInternal(err)
	}

	if err := s.checkItemsExist(req.BookingItems); err != nil {
		return nil, err
	}

	status := constants.BookingStatusPending
	if req.Status != nil {
		if err := validator.ValidateBookingStatus(*req.Status); err != nil {
			return nil, err
		}
		status = *req.Status
	}

	start, err := parseOptionalDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		CampingPlaceID: req.CampingPlaceID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		StartDate:      start,
		EndDate:        end,
		Guests:         req.Guests,
		TotalPrice:     CalcBookingTotalPrice(start, end, place.Price),
		Status:         status,
		Notes:          req.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		for _, it := range req.BookingItems {
			row := models.BookingItem{
				BookingID:     booking.ID,
				CampingItemID: it.CampingItemID,
				Quantity:      it.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		change := models.BookingStatusChange{
			BookingID:  booking.ID,
			Status:     booking.Status,
			ChangedAt:  time.Now(),
			EmployeeID: employeeID,
		}
		return tx.Create(&change).Error
	})
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	s.log.Info("booking %d created for place %d", booking.ID, booking.CampingPlaceID)
	return s.GetByID(booking.ID)
}

// Update applies a partial update. The total price is recomputed from the
// effective dates and place price; a supplied item list replaces all item
// rows (delete-all then insert-all, no diffing).
func (s *BookingService) Update(id uint, req dto.UpdateBookingRequest) (*models.Booking, error) {
	if err := s.checkItemsExist(req.BookingItems); err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := validator.ValidateBookingStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var current models.Booking
		if err := tx.Preload("CampingPlace").First(&current, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewNotFound("Booking not found")
			}
			return errors.NewInternal(err)
		}

		updates := map[string]interface{}{}

		start := current.StartDate
		if req.StartDate != nil {
			parsed, err := parseOptionalDate("startDate", req.StartDate)
			if err != nil {
				return err
			}
			start = parsed
			updates["start_date"] = parsed
		}
		end := current.EndDate
		if req.EndDate != nil {
			parsed, err := parseOptionalDate("endDate", req.EndDate)
			if err != nil {
				return err
			}
			end = parsed
			updates["end_date"] = parsed
		}

		place := current.CampingPlace
		if req.CampingPlaceID != nil && *req.CampingPlaceID != current.CampingPlaceID {
			// Fresh struct: loading into the preloaded place would add its
			// old primary key to the lookup condition.
			var newPlace models.CampingPlace
			if err := tx.First(&newPlace, *req.CampingPlaceID).Error; err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return errors.NewBadRequest(errors.ErrCodeMissingRelation, "Stellplatz existiert nicht.")
				}
				return errors.NewInternal(err)
			}
			place = newPlace
			updates["camping_place_id"] = *req.CampingPlaceID
		}

		if req.CustomerName != nil {
			updates["customer_name"] = *req.CustomerName
		}
		if req.CustomerEmail != nil {
			updates["customer_email"] = *req.CustomerEmail
		}
		if req.CustomerPhone != nil {
			updates["customer_phone"] = *req.CustomerPhone
		}
		if req.Guests != nil {
			updates["guests"] = *req.Guests
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}

		updates["total_price"] = CalcBookingTotalPrice(start, end, place.Price)

		if err := tx.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return errors.NewInternal(err)
		}

		if req.BookingItems != nil {
			if err := tx.Where("booking_id = ?", id).Delete(&models.BookingItem{}).Error; err != nil {
				return errors.NewInternal(err)
			}
			for _, it := range req.BookingItems {
				row := models.BookingItem{
					BookingID:     id,
					CampingItemID: it.CampingItemID,
					Quantity:      it.Quantity,
				}
				if err := tx.Create(&row).Error; err != nil {
					return errors.NewInternal(err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete removes the booking with its item and status change rows.
func (s *BookingService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.BookingItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", id).Delete(&models.BookingStatusChange{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, id).Error
	})
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ChangeStatus updates the status field and appends exactly one audit row
// in the same transaction.
func (s *BookingService) ChangeStatus(id uint, status string, employeeID *uint) (*models.Booking, error) {
	if err := validator.ValidateBookingStatus(status); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return err
		}
		change := models.BookingStatusChange{
			BookingID:  id,
			Status:     status,
			ChangedAt:  time.Now(),
			EmployeeID: employeeID,
		}
		return tx.Create(&change).Error
	})
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return s.GetByID(id)
}

// GetStatusChanges returns the audit trail in ascending order.
func (s *BookingService) GetStatusChanges(bookingID uint) ([]models.BookingStatusChange, error) {
	if _, err := s.GetByID(bookingID); err != nil {
		return nil, err
	}

	var changes []models.BookingStatusChange
	err := s.db.Preload("Employee").
		Where("booking_id = ?", bookingID).
		Order("changed_at ASC").
		Find(&changes).Error
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return changes, nil
}

func (s *BookingService) GetItems(bookingID uint) ([]models.BookingItem, error) {
	if _, err := s.GetByID(bookingID); err != nil {
		return nil, err
	}

	var items []models.BookingItem
	err := s.db.Preload("CampingItem").Where("booking_id = ?", bookingID).Find(&items).Error
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return items, nil
}

func (s *BookingService) AddItem(bookingID uint, req dto.BookingItemRequest) (*models.BookingItem, error) {
	if _, err := s.GetByID(bookingID); err != nil {
		return nil, err
	}
	if err := s.checkItemsExist([]dto.BookingItemRequest{req}); err != nil {
		return nil, err
	}

	row := models.BookingItem{
		BookingID:     bookingID,
		CampingItemID: req.CampingItemID,
		Quantity:      req.Quantity,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, errors.NewInternal(err)
	}

	if err := s.db.Preload("CampingItem").First(&row, row.ID).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	return &row, nil
}

func (s *BookingService) RemoveItem(bookingID, itemID uint) error {
	res := s.db.Where("id = ? AND booking_id = ?", itemID, bookingID).Delete(&models.BookingItem{})
	if res.Error != nil {
		return errors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFound("Booking item not found")
	}
	return nil
}

// CompleteExpiredBookings moves PAID bookings whose end date has passed to
// COMPLETED, one audit row each. Used by the daily cron job; returns the
// completed bookings so the caller can broadcast them.
func (s *BookingService) CompleteExpiredBookings(now time.Time) ([]models.Booking, error) {
	var expired []models.Booking
	err := s.db.
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", constants.BookingStatusPaid, now).
		Find(&expired).Error
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	var completed []models.Booking
	for _, b := range expired {
		updated, err := s.ChangeStatus(b.ID, constants.BookingStatusCompleted, nil)
		if err != nil {
			s.log.Error("auto-complete of booking %d failed: %v", b.ID, err)
			continue
		}
		completed = append(completed, *updated)
	}

	if len(completed) > 0 {
		s.log.Info("auto-completed %d bookings", len(completed))
	}
	return completed, nil
}

func (s *BookingService) checkItemsExist(items []dto.BookingItemRequest) error {
	for _, it := range items {
		var item models.CampingItem
		if err := s.db.First(&item, it.CampingItemID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewBadRequest(errors.ErrCodeMissingRelation,
					fmt.Sprintf("Camping-Item mit ID %d existiert nicht.", it.CampingItemID))
			}
			return errors.NewInternal(err)
		}
	}
	return nil
}
