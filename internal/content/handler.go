package content

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	service *ContentService
}

func NewContentHandler(service *ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) AddTestimonial(c echo.Context) error {
	var testimonial Testimonial
	if err := c.Bind(&testimonial); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.AddTestimonial(c.Request().Context(), &testimonial); err != nil {
		log.Println("Error adding testimonial:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "testimonial posted successfully",
	})
}

func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.service.ListTestimonials(c.Request().Context())
	if err != nil {
		log.Println("Error listing testimonials:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, testimonials)
}

func (h *ContentHandler) AddReview(c echo.Context) error {
	var review Review
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.AddReview(c.Request().Context(), &review); err != nil {
		log.Println("Error adding review:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "review posted successfully",
	})
}

func (h *ContentHandler) ListReviews(c echo.Context) error {
	reviews, err := h.service.ListReviews(c.Request().Context())
	if err != nil {
		log.Println("Error listing reviews:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ContentHandler) RegisterVolunteer(c echo.Context) error {
	var volunteer Volunteer
	if err := c.Bind(&volunteer); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.RegisterVolunteer(c.Request().Context(), &volunteer); err != nil {
		if errors.Is(err, ErrVolunteerExists) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Already registered as volunteer",
			})
		}
		log.Println("Error registering volunteer:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "registered as volunteer successfully",
	})
}

func (h *ContentHandler) ListVolunteers(c echo.Context) error {
	volunteers, err := h.service.ListVolunteers(c.Request().Context())
	if err != nil {
		log.Println("Error listing volunteers:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, volunteers)
}

func (h *ContentHandler) AddNews(c echo.Context) error {
	var news News
	if err := c.Bind(&news); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.service.AddNews(c.Request().Context(), &news); err != nil {
		log.Println("Error adding news:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "news posted successfully",
	})
}

func (h *ContentHandler) ListNews(c echo.Context) error {
	news, err := h.service.ListNews(c.Request().Context())
	if err != nil {
		log.Println("Error listing news:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, news)
}
