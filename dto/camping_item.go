package dto

type CreateCampingItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Size        float64 `json:"size" binding:"required,gt=0"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateCampingItemRequest is a partial update, nil fields stay untouched.
type UpdateCampingItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Size        *float64 `json:"size"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"isActive"`
}
