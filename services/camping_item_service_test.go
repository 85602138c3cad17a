package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

func TestCampingItemCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCampingItemService(db)

	created, err := svc.Create(dto.CreateCampingItemRequest{
		Name:     "Großes Zelt",
		Category: constants.ItemCategoryTent,
		Size:     16,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	newCategory := constants.ItemCategoryTrailer
	updated, err := svc.Update(created.ID, dto.UpdateCampingItemRequest{
		Category: &newCategory,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ItemCategoryTrailer, updated.Category)
	assert.Equal(t, "Großes Zelt", updated.Name)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCampingItemDeleteBlockedByActiveBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCampingItemService(db)
	place := createTestPlace(t, db, "Seeblick", 25)
	item := createTestItem(t, db, "Großes Zelt")

	booking := models.Booking{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
		Status:         constants.BookingStatusPaid,
	}
	require.NoError(t, db.Create(&booking).Error)
	require.NoError(t, db.Create(&models.BookingItem{
		BookingID:     booking.ID,
		CampingItemID: item.ID,
		Quantity:      1,
	}).Error)

	err := svc.Delete(item.ID)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Camping-Item kann nicht gelöscht werden, solange aktive Buchungen existieren.", appErr.Message)

	// A completed booking keeps its item rows but no longer blocks deletion.
	require.NoError(t, db.Model(&booking).Update("status", constants.BookingStatusCompleted).Error)
	require.NoError(t, svc.Delete(item.ID))
}
