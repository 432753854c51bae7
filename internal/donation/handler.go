package donation

import (
	"log"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PaymentProvider creates a payment intent for the given amount in minor
// currency units and returns its client secret. *config.PaymentService
// implements it against Stripe.
type PaymentProvider interface {
	CreateIntent(amount int64) (string, error)
}

type DonationHandler struct {
	service  *DonationService
	payments PaymentProvider
}

func NewDonationHandler(service *DonationService, payments PaymentProvider) *DonationHandler {
	return &DonationHandler{service: service, payments: payments}
}

func (h *DonationHandler) Donate(c echo.Context) error {
	var donation Donation
	if err := c.Bind(&donation); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.Donate(c.Request().Context(), &donation); err != nil {
		log.Println("Error recording donation:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "donation recorded successfully",
	})
}

func (h *DonationHandler) ListDonations(c echo.Context) error {
	donations, err := h.service.ListDonations(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		log.Println("Error listing donations:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, donations)
}

func (h *DonationHandler) Leaderboard(c echo.Context) error {
	ranked, err := h.service.Leaderboard(c.Request().Context())
	if err != nil {
		log.Println("Error building leaderboard:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, ranked)
}

func (h *DonationHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be a positive number"})
	}

	amount := int64(math.Round(req.Price * 100))
	clientSecret, err := h.payments.CreateIntent(amount)
	if err != nil {
		log.Println("Error creating payment intent:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
