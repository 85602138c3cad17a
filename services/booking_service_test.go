package services

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

func newTestBookingService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewBookingService(BookingServiceOptions{DB: db}), db
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestBookingCreate(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)
	item := createTestItem(t, db, "Großes Zelt")

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		StartDate:      strPtr("2025-01-01"),
		EndDate:        strPtr("2025-01-04"),
		Guests:         2,
		BookingItems: []dto.BookingItemRequest{
			{CampingItemID: item.ID, Quantity: 1},
		},
	}, uintPtr(1))
	require.NoError(t, err)

	assert.Equal(t, constants.BookingStatusPending, booking.Status)
	assert.Equal(t, float64(75), booking.TotalPrice)
	require.Len(t, booking.BookingItems, 1)
	assert.Equal(t, item.ID, booking.BookingItems[0].CampingItemID)
	assert.Equal(t, "Großes Zelt", booking.BookingItems[0].CampingItem.Name)

	// Creation writes exactly one audit row.
	require.Len(t, booking.StatusChanges, 1)
	assert.Equal(t, constants.BookingStatusPending, booking.StatusChanges[0].Status)
	assert.Equal(t, uint(1), *booking.StatusChanges[0].EmployeeID)
}

func TestBookingCreateUnknownPlace(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: 999,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
	}, nil)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Stellplatz existiert nicht.", appErr.Message)
}

func TestBookingCreateUnknownItem(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)

	_, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
		BookingItems: []dto.BookingItemRequest{
			{CampingItemID: 777, Quantity: 1},
		},
	}, nil)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, fmt.Sprintf("Camping-Item mit ID %d existiert nicht.", 777), appErr.Message)

	// The failed create must not leave a booking behind.
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestBookingCreateInvalidStatus(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)

	_, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
		Status:         strPtr("RESERVIERT"),
	}, nil)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Ungültiger Status 'RESERVIERT'.", appErr.Message)
}

func TestBookingUpdateRecomputesPrice(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		StartDate:      strPtr("2025-01-01"),
		EndDate:        strPtr("2025-01-04"),
		Guests:         2,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, float64(75), booking.TotalPrice)

	updated, err := svc.Update(booking.ID, dto.UpdateBookingRequest{
		EndDate: strPtr("2025-01-06"),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(125), updated.TotalPrice)

	// Clearing a date with "" zeroes the total.
	cleared, err := svc.Update(booking.ID, dto.UpdateBookingRequest{
		EndDate: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.EndDate)
	assert.Equal(t, float64(0), cleared.TotalPrice)
}

func TestBookingUpdateChangesPlace(t *testing.T) {
	svc, db := newTestBookingService(t)
	cheap := createTestPlace(t, db, "Seeblick", 25)
	expensive := createTestPlace(t, db, "Waldrand", 40)

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: cheap.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		StartDate:      strPtr("2025-01-01"),
		EndDate:        strPtr("2025-01-04"),
		Guests:         2,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, float64(75), booking.TotalPrice)

	// Moving to another place recomputes the total from its price.
	moved, err := svc.Update(booking.ID, dto.UpdateBookingRequest{
		CampingPlaceID: &expensive.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, expensive.ID, moved.CampingPlaceID)
	assert.Equal(t, "Waldrand", moved.CampingPlace.Name)
	assert.Equal(t, float64(120), moved.TotalPrice)

	// An unknown target place still answers 400.
	unknown := uint(999)
	_, err = svc.Update(booking.ID, dto.UpdateBookingRequest{
		CampingPlaceID: &unknown,
	})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Stellplatz existiert nicht.", appErr.Message)
}

func TestBookingUpdateReplacesItems(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)
	tent := createTestItem(t, db, "Zelt")
	trailer := createTestItem(t, db, "Wohnwagen")

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
		BookingItems: []dto.BookingItemRequest{
			{CampingItemID: tent.ID, Quantity: 2},
		},
	}, nil)
	require.NoError(t, err)

	// nil slice leaves the items alone.
	updated, err := svc.Update(booking.ID, dto.UpdateBookingRequest{
		CustomerName: strPtr("Moritz Mustermann"),
	})
	require.NoError(t, err)
	require.Len(t, updated.BookingItems, 1)
	assert.Equal(t, tent.ID, updated.BookingItems[0].CampingItemID)

	// A supplied slice replaces all rows.
	updated, err = svc.Update(booking.ID, dto.UpdateBookingRequest{
		BookingItems: []dto.BookingItemRequest{
			{CampingItemID: trailer.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.BookingItems, 1)
	assert.Equal(t, trailer.ID, updated.BookingItems[0].CampingItemID)
}

func TestBookingChangeStatusAppendsAuditRow(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
	}, nil)
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(booking.ID, constants.BookingStatusConfirmed, uintPtr(7))
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, updated.Status)

	changes, err := svc.GetStatusChanges(booking.ID)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	// Ascending by change time: creation first, then the confirmation.
	assert.Equal(t, constants.BookingStatusPending, changes[0].Status)
	assert.Equal(t, constants.BookingStatusConfirmed, changes[1].Status)
	assert.Equal(t, uint(7), *changes[1].EmployeeID)
}

func TestBookingChangeStatusInvalid(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
	}, nil)
	require.NoError(t, err)

	_, err = svc.ChangeStatus(booking.ID, "FOO", nil)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Ungültiger Status 'FOO'.", appErr.Message)

	// Nothing was written.
	changes, err := svc.GetStatusChanges(booking.ID)
	require.NoError(t, err)
	assert.Len(t, changes, 1)
}

func TestBookingDeleteCascades(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)
	item := createTestItem(t, db, "Zelt")

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
		BookingItems: []dto.BookingItemRequest{
			{CampingItemID: item.ID, Quantity: 1},
		},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(booking.ID))

	_, err = svc.GetByID(booking.ID)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	var itemCount, changeCount int64
	require.NoError(t, db.Model(&models.BookingItem{}).Where("booking_id = ?", booking.ID).Count(&itemCount).Error)
	require.NoError(t, db.Model(&models.BookingStatusChange{}).Where("booking_id = ?", booking.ID).Count(&changeCount).Error)
	assert.Equal(t, int64(0), itemCount)
	assert.Equal(t, int64(0), changeCount)
}

func TestBookingListFilters(t *testing.T) {
	svc, db := newTestBookingService(t)
	placeA := createTestPlace(t, db, "Seeblick", 25)
	placeB := createTestPlace(t, db, "Waldrand", 30)

	_, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: placeA.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
	}, nil)
	require.NoError(t, err)

	confirmed := constants.BookingStatusConfirmed
	_, err = svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: placeB.ID,
		CustomerName:   "Erika Musterfrau",
		CustomerEmail:  "erika@example.com",
		Guests:         4,
		Status:         &confirmed,
	}, nil)
	require.NoError(t, err)

	all, err := svc.List(dto.BookingFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byPlace, err := svc.List(dto.BookingFilters{CampingPlaceID: &placeA.ID})
	require.NoError(t, err)
	require.Len(t, byPlace, 1)
	assert.Equal(t, placeA.ID, byPlace[0].CampingPlaceID)

	byStatus, err := svc.List(dto.BookingFilters{Status: constants.BookingStatusConfirmed})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, placeB.ID, byStatus[0].CampingPlaceID)
}

func TestBookingItemsAddAndRemove(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)
	item := createTestItem(t, db, "Zelt")

	booking, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		Guests:         2,
	}, nil)
	require.NoError(t, err)

	row, err := svc.AddItem(booking.ID, dto.BookingItemRequest{CampingItemID: item.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "Zelt", row.CampingItem.Name)

	items, err := svc.GetItems(booking.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.RemoveItem(booking.ID, row.ID))

	err = svc.RemoveItem(booking.ID, row.ID)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCompleteExpiredBookings(t *testing.T) {
	svc, db := newTestBookingService(t)
	place := createTestPlace(t, db, "Seeblick", 25)

	paid := constants.BookingStatusPaid
	confirmed := constants.BookingStatusConfirmed

	expired, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Max Mustermann",
		CustomerEmail:  "max@example.com",
		StartDate:      strPtr("2025-01-01"),
		EndDate:        strPtr("2025-01-04"),
		Guests:         2,
		Status:         &paid,
	}, nil)
	require.NoError(t, err)

	ongoing, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Erika Musterfrau",
		CustomerEmail:  "erika@example.com",
		StartDate:      strPtr("2025-06-01"),
		EndDate:        strPtr("2025-06-10"),
		Guests:         3,
		Status:         &paid,
	}, nil)
	require.NoError(t, err)

	// Past end date but never paid, must stay untouched.
	unpaid, err := svc.Create(dto.CreateBookingRequest{
		CampingPlaceID: place.ID,
		CustomerName:   "Hans Beispiel",
		CustomerEmail:  "hans@example.com",
		StartDate:      strPtr("2025-01-01"),
		EndDate:        strPtr("2025-01-04"),
		Guests:         1,
		Status:         &confirmed,
	}, nil)
	require.NoError(t, err)

	now, err := time.Parse("2006-01-02", "2025-02-01")
	require.NoError(t, err)

	completed, err := svc.CompleteExpiredBookings(now)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, expired.ID, completed[0].ID)
	assert.Equal(t, constants.BookingStatusCompleted, completed[0].Status)

	stillOngoing, err := svc.GetByID(ongoing.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusPaid, stillOngoing.Status)

	stillUnpaid, err := svc.GetByID(unpaid.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, stillUnpaid.Status)

	// The completion appended an audit row.
	changes, err := svc.GetStatusChanges(expired.ID)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, constants.BookingStatusCompleted, changes[1].Status)
	assert.Nil(t, changes[1].EmployeeID)
}
