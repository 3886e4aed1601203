package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal/internal/models"
)

// ListUsers returns every stored user.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.Users.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the user with the path email is an admin.
// Unknown emails are simply not admins.
func (h *Handler) CheckAdmin(c *gin.Context) {
	user, err := h.Store.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		serverError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// MakeAdmin grants the admin role to an existing user. Repeating it leaves
// the role unchanged.
func (h *Handler) MakeAdmin(c *gin.Context) {
	result, err := h.Store.Users.SetRole(c.Request.Context(), c.Param("email"), models.RoleAdmin)
	if err != nil {
		serverError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpsertUser is called by the client after every login or registration. It
// merges the profile fields into the user record and hands back a fresh
// access token for that email.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	profile := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		// role is only granted through MakeAdmin
		if k == "" || k == "_id" || k == "role" || k == "email" || strings.HasPrefix(k, "$") {
			continue
		}
		profile[k] = v
	}

	result, err := h.Store.Users.Upsert(c.Request.Context(), email, profile)
	if err != nil {
		serverError(c, err, "Failed to save user")
		return
	}

	token, err := h.Tokens.Generate(email)
	if err != nil {
		serverError(c, err, "Could not generate token")
		return
	}
	h.Metrics.RecordTokenIssued()

	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}
