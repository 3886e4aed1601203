package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal/internal/metrics"
	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/harentsoaR/doctors-portal/internal/utils"
)

// Notifier is told about every booking that was created.
type Notifier interface {
	SendBookingConfirmation(b *models.Booking)
}

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	Store           *repository.Store
	Tokens          *utils.TokenManager
	NotificationSvc Notifier
	Metrics         metrics.Recorder
}

func NewHandler(store *repository.Store, tokens *utils.TokenManager, notifier Notifier, recorder metrics.Recorder) *Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Handler{
		Store:           store,
		Tokens:          tokens,
		NotificationSvc: notifier,
		Metrics:         recorder,
	}
}

// serverError logs err with the request's logger and answers 500.
func serverError(c *gin.Context, err error, message string) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}
