package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type AccountController struct {
	service services.AccountService
	logger  *zap.Logger
}

func NewAccountController(service services.AccountService, logger *zap.Logger) *AccountController {
	return &AccountController{service: service, logger: logger}
}

// Register godoc
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign up payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (ctrl *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ctrl.service.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, ctrl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Account created")
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (ctrl *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ctrl.logger, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
