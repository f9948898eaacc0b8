package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type ItineraryController struct {
	service services.ItineraryService
	logger  *zap.Logger
}

func NewItineraryController(service services.ItineraryService, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{service: service, logger: logger}
}

// GenerateItinerary godoc
// @Summary Generate a trip itinerary
// @Description Builds a day-by-day itinerary for the given destination, dates and budget
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip request"
// @Success 200 {object} utils.APIResponse{data=response_models.ItineraryResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (ctrl *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := ctrl.service.CreateItinerary(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, ctrl.logger, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated")
}

// GetItinerary godoc
// @Summary Get one itinerary with all days and activities
// @Tags itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse{data=response_models.ItineraryResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (ctrl *ItineraryController) GetItinerary(c *gin.Context) {
	resp, err := ctrl.service.GetItineraryById(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, ctrl.logger, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// ListItineraries godoc
// @Summary List the caller's itineraries
// @Tags itineraries
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse{data=[]response_models.ItineraryListItem}
// @Security BearerAuth
// @Router /itineraries [get]
func (ctrl *ItineraryController) ListItineraries(c *gin.Context) {
	page := utils.ParseIntOrDefault(c.DefaultQuery("page", "1"), 1)
	pageSize := utils.ParseIntOrDefault(c.DefaultQuery("page_size", "10"), 10)

	items, err := ctrl.service.GetItinerariesByAccount(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, ctrl.logger, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (ctrl *ItineraryController) DeleteItinerary(c *gin.Context) {
	err := ctrl.service.DeleteItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, ctrl.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted")
}
