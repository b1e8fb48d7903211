package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StudentDashboard lists the student's own complaints, newest first.
func (h *Handler) StudentDashboard(c *gin.Context) {
	p, _ := principalFrom(c)
	complaints, err := h.Complaints.ListForStudent(p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load complaints")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "complaints": complaints})
}

// CollegeDashboard lists the college's scoped complaints with student
// names resolved, plus its staff roster and code.
func (h *Handler) CollegeDashboard(c *gin.Context) {
	p, _ := principalFrom(c)

	complaints, err := h.Complaints.ListForCollege(p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load complaints")
		return
	}
	staff, err := h.Registry.StaffRoster(p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load staff")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"college_code": p.CollegeCode,
		"complaints":   complaints,
		"staff":        staff,
	})
}

// StaffDashboard lists the complaints assigned to the staff member.
func (h *Handler) StaffDashboard(c *gin.Context) {
	p, _ := principalFrom(c)
	complaints, err := h.Complaints.ListForStaff(p.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load complaints")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "complaints": complaints})
}
