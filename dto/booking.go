package dto

type BookingItemRequest struct {
	CampingItemID uint `json:"campingItemId" binding:"required"`
	Quantity      int  `json:"quantity" binding:"required,gt=0"`
}

type CreateBookingRequest struct {
	CampingPlaceID uint                 `json:"campingPlaceId" binding:"required"`
	CustomerName   string               `json:"customerName" binding:"required"`
	CustomerEmail  string               `json:"customerEmail" binding:"required,email"`
	CustomerPhone  *string              `json:"customerPhone"`
	StartDate      *string              `json:"startDate"` // RFC 3339 or YYYY-MM-DD
	EndDate        *string              `json:"endDate"`
	Guests         int                  `json:"guests" binding:"required,gt=0"`
	Status         *string              `json:"status"`
	Notes          *string              `json:"notes"`
	BookingItems   []BookingItemRequest `json:"bookingItems"`
}

// UpdateBookingRequest is a partial update. A non-nil BookingItems slice
// replaces all item rows, nil leaves them untouched.
type UpdateBookingRequest struct {
	CampingPlaceID *uint                `json:"campingPlaceId"`
	CustomerName   *string              `json:"customerName"`
	CustomerEmail  *string              `json:"customerEmail"`
	CustomerPhone  *string              `json:"customerPhone"`
	StartDate      *string              `json:"startDate"`
	EndDate        *string              `json:"endDate"`
	Guests         *int                 `json:"guests"`
	Status         *string              `json:"status"`
	Notes          *string              `json:"notes"`
	BookingItems   []BookingItemRequest `json:"bookingItems"`
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingFilters narrows the booking list query.
type BookingFilters struct {
	CampingPlaceID *uint
	Status         string
}
