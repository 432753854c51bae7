package campaign

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CampaignHandler struct {
	service *CampaignService
}

func NewCampaignHandler(service *CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

func (h *CampaignHandler) AddCampaign(c echo.Context) error {
	var campaign Campaign
	if err := c.Bind(&campaign); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.AddCampaign(c.Request().Context(), &campaign); err != nil {
		log.Println("Error adding campaign:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "campaign posted successfully",
	})
}

func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	campaigns, err := h.service.ListCampaigns(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		log.Println("Error listing campaigns:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	campaign, err := h.service.GetCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) Contribute(c echo.Context) error {
	var req ContributeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "newAmount must be a positive number"})
	}

	total, err := h.service.Contribute(c.Request().Context(), c.Param("id"), req.NewAmount)
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":         true,
		"message":         "Contribution added successfully",
		"collectedAmount": total,
	})
}

func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	deleted, err := h.service.DeleteCampaign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return campaignError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func campaignError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID format"})
	case errors.Is(err, ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "newAmount must be a positive number"})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Campaign not found"})
	default:
		log.Println("Campaign store error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
