package dto

type CreateCampingPlaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Size        float64 `json:"size" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Amenities   *string `json:"amenities"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateCampingPlaceRequest is a partial update, nil fields stay untouched.
type UpdateCampingPlaceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Size        *float64 `json:"size"`
	Price       *float64 `json:"price"`
	Amenities   *string  `json:"amenities"`
	IsActive    *bool    `json:"isActive"`
}
