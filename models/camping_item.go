package models

import (
	"time"
)

type CampingItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Category    string    `json:"category"` // tent, trailer, ...
	Size        float64   `json:"size"`     // Occupied area in m²
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
