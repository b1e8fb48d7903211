package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
)

type addStaffRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

// AddStaffForm returns the college's current roster alongside the form
// contract.
func (h *Handler) AddStaffForm(c *gin.Context) {
	p, _ := principalFrom(c)
	staff, err := h.Registry.StaffRoster(p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load staff")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "staff": staff})
}

// AddStaff creates a staff account bound to the calling college.
func (h *Handler) AddStaff(c *gin.Context) {
	p, _ := principalFrom(c)

	var req addStaffRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid staff request")
		return
	}

	collegeID := p.UserID
	if _, err := h.Credentials.RegisterStaff(req.Name, req.Email, req.Password, &collegeID); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			respondError(c, http.StatusConflict, "Email already exists!")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to add staff")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Staff added successfully!"})
}
