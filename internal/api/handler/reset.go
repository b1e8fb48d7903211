package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/reset"
)

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

// ForgotPasswordForm validates the role segment for the reset form.
func (h *Handler) ForgotPasswordForm(c *gin.Context) {
	role, err := models.ParseRole(c.Param("role"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Unknown role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "role": role})
}

// ForgotPassword issues a reset token for the account. The link is
// returned in the response — this deployment displays it instead of
// emailing it.
func (h *Handler) ForgotPassword(c *gin.Context) {
	role, err := models.ParseRole(c.Param("role"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Unknown role")
		return
	}

	var req forgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid reset request")
		return
	}

	token, err := h.Resets.Request(role, req.Email)
	if err != nil {
		if errors.Is(err, reset.ErrEmailNotFound) {
			respondError(c, http.StatusNotFound, "Email not found!")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to issue reset token")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Reset link generated. In production this would be emailed to you.",
		"reset_link": "/reset-password/" + token,
	})
}

// ResetPasswordForm checks a token before the client shows the password
// form.
func (h *Handler) ResetPasswordForm(c *gin.Context) {
	if _, err := h.Resets.Validate(c.Param("token")); err != nil {
		respondResetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResetPassword consumes the token and rotates the owning account's
// password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid reset request")
		return
	}

	role, err := h.Resets.Consume(c.Param("token"), req.Password)
	if err != nil {
		respondResetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    role,
		"message": "Password reset successfully! Please login.",
	})
}

func respondResetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reset.ErrExpiredToken):
		respondError(c, http.StatusBadRequest, "Reset token has expired!")
	case errors.Is(err, reset.ErrInvalidToken):
		respondError(c, http.StatusBadRequest, "Invalid reset token!")
	default:
		respondError(c, http.StatusInternalServerError, "Failed to reset password")
	}
}
