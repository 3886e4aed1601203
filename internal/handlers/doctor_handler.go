package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Store.Doctors.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) AddDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.Store.Doctors.Create(c.Request.Context(), &doctor)
	if err != nil {
		serverError(c, err, "Failed to add doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	result, err := h.Store.Doctors.DeleteByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		serverError(c, err, "Failed to delete doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}
