package dto

import "campsite/models"

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

type EmployeeResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func ToEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Email:    e.Email,
		FullName: e.FullName,
	}
}
