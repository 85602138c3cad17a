package models

import (
	"time"
)

type CampingPlace struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`        // Display name of the plot
	Description *string   `json:"description"` // Optional free text
	Location    string    `json:"location"`    // Section/row on the site
	Size        float64   `json:"size"`        // Area in m²
	Price       float64   `json:"price"`       // Nightly price
	Amenities   string    `json:"amenities"`   // Free text, comma separated
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
