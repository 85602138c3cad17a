package models

import (
	"time"
)

type Booking struct {
	ID             uint                  `json:"id" gorm:"primaryKey"`
	CampingPlaceID uint                  `json:"campingPlaceId"`
	CampingPlace   CampingPlace          `json:"campingPlace" gorm:"foreignKey:CampingPlaceID"`
	CustomerName   string                `json:"customerName"`
	CustomerEmail  string                `json:"customerEmail"`
	CustomerPhone  *string               `json:"customerPhone"`
	StartDate      *time.Time            `json:"startDate"`
	EndDate        *time.Time            `json:"endDate"`
	Guests         int                   `json:"guests"`
	TotalPrice     float64               `json:"totalPrice"` // Always recomputed server side
	Status         string                `json:"status"`     // constants.BookingStatus*
	Notes          *string               `json:"notes"`
	BookingItems   []BookingItem         `json:"bookingItems" gorm:"foreignKey:BookingID"`
	StatusChanges  []BookingStatusChange `json:"statusChanges" gorm:"foreignKey:BookingID"`
	CreatedAt      time.Time             `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time             `gorm:"autoUpdateTime" json:"updatedAt"`
}

type BookingItem struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	BookingID     uint        `json:"bookingId"`
	CampingItemID uint        `json:"campingItemId"`
	CampingItem   CampingItem `json:"campingItem" gorm:"foreignKey:CampingItemID"`
	Quantity      int         `json:"quantity"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BookingStatusChange is the append-only audit trail of a booking.
// Exactly one row is written at creation and on every status change.
type BookingStatusChange struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	BookingID  uint         `json:"bookingId"`
	Status     string       `json:"status"`
	ChangedAt  time.Time    `json:"changedAt"`
	EmployeeID *uint        `json:"employeeId"`
	Employee   *EmployeeRef `json:"employee" gorm:"foreignKey:EmployeeID"`
}
