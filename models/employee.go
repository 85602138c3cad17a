package models

import (
	"time"
)

type Employee struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"unique;not null"`
	FullName  string    `json:"fullName"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// EmployeeRef is the reduced shape embedded in status change rows.
type EmployeeRef struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
