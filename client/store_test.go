package client

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsite/models"
)

func TestStorePlaceUpsertPatchesEmbeddedCopies(t *testing.T) {
	store := NewStore()

	store.SetBookings([]models.Booking{
		{
			ID:             1,
			CampingPlaceID: 5,
			CampingPlace:   models.CampingPlace{ID: 5, Name: "Seeblick"},
		},
		{
			ID:             2,
			CampingPlaceID: 6,
			CampingPlace:   models.CampingPlace{ID: 6, Name: "Waldrand"},
		},
	})

	store.UpsertCampingPlace(models.CampingPlace{ID: 5, Name: "Seeblick Premium"})

	patched, ok := store.Booking(1)
	require.True(t, ok)
	assert.Equal(t, "Seeblick Premium", patched.CampingPlace.Name)

	untouched, ok := store.Booking(2)
	require.True(t, ok)
	assert.Equal(t, "Waldrand", untouched.CampingPlace.Name)
}

func TestStoreItemUpsertPatchesBookingItems(t *testing.T) {
	store := NewStore()

	store.SetBookings([]models.Booking{
		{
			ID: 1,
			BookingItems: []models.BookingItem{
				{ID: 10, CampingItemID: 3, CampingItem: models.CampingItem{ID: 3, Name: "Zelt"}},
				{ID: 11, CampingItemID: 4, CampingItem: models.CampingItem{ID: 4, Name: "Wohnwagen"}},
			},
		},
	})

	store.UpsertCampingItem(models.CampingItem{ID: 3, Name: "Großes Zelt"})

	booking, ok := store.Booking(1)
	require.True(t, ok)
	assert.Equal(t, "Großes Zelt", booking.BookingItems[0].CampingItem.Name)
	assert.Equal(t, "Wohnwagen", booking.BookingItems[1].CampingItem.Name)
}

func TestStoreUpsertIsIdempotent(t *testing.T) {
	store := NewStore()

	booking := models.Booking{ID: 1, CustomerName: "Max Mustermann"}
	store.UpsertBooking(booking)
	store.UpsertBooking(booking)

	assert.Len(t, store.Bookings(), 1)
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()

	store.SetCampingPlaces([]models.CampingPlace{{ID: 1}, {ID: 2}})
	store.RemoveCampingPlace(1)

	_, ok := store.CampingPlace(1)
	assert.False(t, ok)
	assert.Len(t, store.CampingPlaces(), 1)

	// Removing an unknown ID is a no-op.
	store.RemoveCampingPlace(99)
	assert.Len(t, store.CampingPlaces(), 1)
}

func TestEditSessionRefreshOnNewerVersion(t *testing.T) {
	store := NewStore()

	base := time.Now()
	store.UpsertBooking(models.Booking{ID: 1, CustomerName: "Max", UpdatedAt: base})

	var refreshed []models.Booking
	cancel := store.TrackBookingEdit(1, func(b models.Booking) {
		refreshed = append(refreshed, b)
	}, nil)
	defer cancel()

	// Same version again, the open form must not be reset.
	store.UpsertBooking(models.Booking{ID: 1, CustomerName: "Max", UpdatedAt: base})
	assert.Empty(t, refreshed)

	// A newer version refreshes the dialog.
	store.UpsertBooking(models.Booking{ID: 1, CustomerName: "Moritz", UpdatedAt: base.Add(time.Second)})
	require.Len(t, refreshed, 1)
	assert.Equal(t, "Moritz", refreshed[0].CustomerName)
}

func TestEditSessionClosesOnRemoval(t *testing.T) {
	store := NewStore()
	store.UpsertBooking(models.Booking{ID: 1})

	closed := false
	store.TrackBookingEdit(1, nil, func() { closed = true })

	store.RemoveBooking(1)
	assert.True(t, closed)

	// The session is gone, a second removal must not fire again.
	closed = false
	store.RemoveBooking(1)
	assert.False(t, closed)
}

func TestEditSessionCancelStopsCallbacks(t *testing.T) {
	store := NewStore()

	base := time.Now()
	store.UpsertCampingPlace(models.CampingPlace{ID: 1, Name: "Seeblick", UpdatedAt: base})

	calls := 0
	cancel := store.TrackCampingPlaceEdit(1, func(models.CampingPlace) { calls++ }, nil)
	cancel()

	store.UpsertCampingPlace(models.CampingPlace{ID: 1, Name: "Neu", UpdatedAt: base.Add(time.Second)})
	assert.Zero(t, calls)
}

func TestApplyDispatchesEvents(t *testing.T) {
	store := NewStore()

	payload, err := json.Marshal(models.Booking{ID: 7, CustomerName: "Max Mustermann"})
	require.NoError(t, err)
	frame, err := json.Marshal(map[string]json.RawMessage{
		"type":    json.RawMessage(`"bookings/created"`),
		"payload": payload,
	})
	require.NoError(t, err)

	store.Apply(frame)

	booking, ok := store.Booking(7)
	require.True(t, ok)
	assert.Equal(t, "Max Mustermann", booking.CustomerName)

	store.Apply([]byte(`{"type":"bookings/deleted","payload":{"id":7}}`))
	_, ok = store.Booking(7)
	assert.False(t, ok)
}

func TestApplyIgnoresMalformedAndUnknownFrames(t *testing.T) {
	store := NewStore()
	store.UpsertBooking(models.Booking{ID: 1})

	store.Apply([]byte(`not json`))
	store.Apply([]byte(`{"type":"unbekannt/created","payload":{}}`))
	store.Apply([]byte(`{"type":"bookings/created","payload":"kein objekt"}`))
	store.Apply([]byte(`{"type":"bookings/deleted","payload":{}}`))

	assert.Len(t, store.Bookings(), 1)
}
