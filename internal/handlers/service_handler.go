package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal/internal/services"
)

// ListServices returns the name of every service.
func (h *Handler) ListServices(c *gin.Context) {
	names, err := h.Store.Services.ListNames(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, names)
}

// ListAvailable returns every service with the slots still free on the
// requested date (?date=).
func (h *Handler) ListAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	catalog, err := h.Store.Services.List(ctx)
	if err != nil {
		serverError(c, err, "Failed to retrieve services")
		return
	}
	bookings, err := h.Store.Bookings.ListByDate(ctx, date)
	if err != nil {
		serverError(c, err, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, services.AvailableSlots(date, catalog, bookings))
}
