package constants

// Booking status
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusPaid      = "PAID"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// BookingStatuses lists every accepted status value.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusPaid,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// ProtectedBookingStatuses block deletion of referenced places and items.
var ProtectedBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusPaid,
}

// RevenueBookingStatuses count towards revenue in the analytics summary.
var RevenueBookingStatuses = []string{
	BookingStatusConfirmed,
	BookingStatusPaid,
	BookingStatusCompleted,
}

func IsValidBookingStatus(status string) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Camping item categories
const (
	ItemCategoryTent    = "tent"
	ItemCategoryTrailer = "trailer"
	ItemCategoryVehicle = "vehicle"
	ItemCategoryOther   = "other"
)
