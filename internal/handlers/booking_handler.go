package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal/internal/middleware"
	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
)

// ListBookings returns the bookings of ?patient=, which must be the caller.
func (h *Handler) ListBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient != middleware.CallerEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	bookings, err := h.Store.Bookings.ListByPatient(c.Request.Context(), patient)
	if err != nil {
		serverError(c, err, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking stores a booking unless the patient already booked that
// treatment on that date, in which case the existing booking is returned.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	result, err := h.Store.Bookings.Create(ctx, &booking)
	if errors.Is(err, repository.ErrDuplicateBooking) {
		existing, findErr := h.Store.Bookings.FindByKey(ctx, booking.Treatment, booking.Date, booking.Patient)
		if findErr != nil {
			serverError(c, findErr, "Failed to retrieve booking")
			return
		}
		if existing == nil {
			serverError(c, err, "Failed to retrieve booking")
			return
		}
		h.Metrics.RecordBookingConflict()
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": existing})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to create booking")
		return
	}

	zerolog.Ctx(ctx).Info().
		Str("treatment", booking.Treatment).
		Str("date", booking.Date).
		Str("slot", booking.Slot).
		Msg("booking created")
	h.Metrics.RecordBookingCreated()
	if h.NotificationSvc != nil {
		h.NotificationSvc.SendBookingConfirmation(&booking)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}
