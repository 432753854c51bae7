package supply

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SupplyHandler struct {
	service *SupplyService
}

func NewSupplyHandler(service *SupplyService) *SupplyHandler {
	return &SupplyHandler{service: service}
}

func (h *SupplyHandler) AddSupply(c echo.Context) error {
	var supply Supply
	if err := c.Bind(&supply); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.AddSupply(c.Request().Context(), &supply); err != nil {
		log.Println("Error adding supply:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "supply posted successfully",
	})
}

func (h *SupplyHandler) ListSupplies(c echo.Context) error {
	supplies, err := h.service.ListSupplies(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		log.Println("Error listing supplies:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, supplies)
}

func (h *SupplyHandler) GetSupply(c echo.Context) error {
	supply, err := h.service.GetSupply(c.Request().Context(), c.Param("id"))
	if err != nil {
		return supplyError(c, err, "Supply not found")
	}
	return c.JSON(http.StatusOK, supply)
}

func (h *SupplyHandler) UpdateApplied(c echo.Context) error {
	var req UpdateAppliedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.UpdateApplied(c.Request().Context(), c.Param("id"), req.IsApplied); err != nil {
		return supplyError(c, err, "Supply not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Supply status updated successfully"})
}

func (h *SupplyHandler) DeleteSupply(c echo.Context) error {
	deleted, err := h.service.DeleteSupply(c.Request().Context(), c.Param("id"))
	if err != nil {
		return supplyError(c, err, "Supply not found")
	}
	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (h *SupplyHandler) AddApplication(c echo.Context) error {
	var application Application
	if err := c.Bind(&application); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.AddApplication(c.Request().Context(), &application); err != nil {
		log.Println("Error adding application:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "applied successfully",
	})
}

func (h *SupplyHandler) ListApplications(c echo.Context) error {
	applications, err := h.service.ListApplications(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		log.Println("Error listing applications:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, applications)
}

func (h *SupplyHandler) DenyApplication(c echo.Context) error {
	deleted, err := h.service.DenyApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return supplyError(c, err, "Application not found")
	}
	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// Approve handles both route shapes: /approve/:id updates the application
// only, /approve/:applyId/:supplyId updates application and supply together.
func (h *SupplyHandler) Approve(c echo.Context) error {
	var req ApproveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.service.Approve(c.Request().Context(), c.Param("applyId"), c.Param("supplyId"), req.IsApproved); err != nil {
		return supplyError(c, err, "Application not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Approval status updated successfully"})
}

func supplyError(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID format"})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundMsg})
	default:
		log.Println("Supply store error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
