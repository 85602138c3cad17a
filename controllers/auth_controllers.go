package controllers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"campsite/dto"
	"campsite/middleware"
	"campsite/response"
	"campsite/services"
	"campsite/validator"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{service: services.NewAuthService(db)}
}

// bindJSON decodes the body and runs the German-message validation.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(target); err != nil {
		response.BadRequest(c, "Ungültige Eingabe.")
		return false
	}
	if err := validator.Struct(target); err != nil {
		response.HandleError(c, err)
		return false
	}
	return true
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := ctl.service.Signup(req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, result)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := ctl.service.Login(req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, result)
}

func (ctl *AuthController) Me(c *gin.Context) {
	employeeID := middleware.EmployeeIDFromContext(c)
	if employeeID == nil {
		response.Unauthorized(c)
		return
	}

	profile, err := ctl.service.GetMe(*employeeID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, profile)
}
