package services

import (
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

const bcryptCost = 12

// AuthService handles signup, login and profile lookup for employees.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Signup creates the employee and returns a fresh token with the profile.
func (s *AuthService) Signup(req dto.SignupRequest) (*dto.AuthResponse, error) {
	var existing models.Employee
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, errors.NewConflict(errors.ErrCodeEmailExists, "E-Mail wird bereits verwendet.")
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewInternal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	employee := models.Employee{
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashed),
	}
	if err := s.db.Create(&employee).Error; err != nil {
		return nil, errors.NewInternal(err)
	}

	return s.authResponse(employee)
}

// Login verifies the credentials. Unknown email and wrong password answer
// with the same message so the endpoint does not leak which one failed.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	var employee models.Employee
	if err := s.db.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewUnauthorized(errors.ErrCodeBadCredentials, "Ungültige E-Mail oder Passwort.")
		}
		return nil, errors.NewInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)); err != nil {
		return nil, errors.NewUnauthorized(errors.ErrCodeBadCredentials, "Ungültige E-Mail oder Passwort.")
	}

	return s.authResponse(employee)
}

// GetMe returns the profile of the authenticated employee.
func (s *AuthService) GetMe(employeeID uint) (*dto.EmployeeResponse, error) {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFound("Mitarbeiter nicht gefunden.")
		}
		return nil, errors.NewInternal(err)
	}

	resp := dto.ToEmployeeResponse(employee)
	return &resp, nil
}

func (s *AuthService) authResponse(employee models.Employee) (*dto.AuthResponse, error) {
	token, err := GenerateToken(employee.ID, employee.Email)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return &dto.AuthResponse{
		Token:    token,
		Employee: dto.ToEmployeeResponse(employee),
	}, nil
}
