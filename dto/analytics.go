package dto

type MonthRevenue struct {
	Month   string  `json:"month"` // de-DE short label, e.g. "Jan. 2025"
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Name  string `json:"name"` // German display name
	Value int    `json:"value"`
	Color string `json:"color"`
}

type PlaceRevenue struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type AnalyticsResponse struct {
	TotalRevenue      float64        `json:"totalRevenue"`
	TotalBookings     int            `json:"totalBookings"`
	ConfirmedBookings int            `json:"confirmedBookings"`
	PendingBookings   int            `json:"pendingBookings"`
	CancelledBookings int            `json:"cancelledBookings"`
	TotalPlaces       int            `json:"totalPlaces"`
	ActivePlaces      int            `json:"activePlaces"`
	TotalItems        int            `json:"totalItems"`
	ActiveItems       int            `json:"activeItems"`
	AvgBookingValue   float64        `json:"avgBookingValue"`
	AvgGuests         float64        `json:"avgGuests"`
	RevenueByMonth    []MonthRevenue `json:"revenueByMonth"`
	BookingsByStatus  []StatusCount  `json:"bookingsByStatus"`
	RevenueByPlace    []PlaceRevenue `json:"revenueByPlace"`
	MaxDailyRevenue   float64        `json:"maxDailyRevenue"`
	AvgPricePerNight  float64        `json:"avgPricePerNight"`
}
