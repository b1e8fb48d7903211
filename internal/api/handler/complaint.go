package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/complaint"
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/upload"
)

type assignRequest struct {
	ComplaintID uint `json:"complaint_id" binding:"required"`
	StaffID     uint `json:"staff_id" binding:"required"`
}

type updateStatusRequest struct {
	ComplaintID uint   `json:"complaint_id" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// NewComplaintForm describes the submission form, mainly the attachment
// allow-list.
func (h *Handler) NewComplaintForm(c *gin.Context) {
	extensions := make([]string, 0, len(config.AllowedUploadExtensions))
	for ext := range config.AllowedUploadExtensions {
		extensions = append(extensions, ext)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "allowed_extensions": extensions})
}

// CreateComplaint submits a new complaint for the logged-in student.
// Multipart form: title, description, optional file field "attachment".
func (h *Handler) CreateComplaint(c *gin.Context) {
	p, _ := principalFrom(c)

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		respondError(c, http.StatusBadRequest, "Title and description are required")
		return
	}

	var attachment string
	if file, err := c.FormFile("attachment"); err == nil && file != nil {
		stored, err := h.Uploads.Save(file)
		if err != nil {
			if errors.Is(err, upload.ErrDisallowedExtension) {
				respondError(c, http.StatusBadRequest, "File type not allowed!")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to store attachment")
			return
		}
		attachment = stored
	}

	created, err := h.Complaints.Submit(p.UserID, title, description, attachment)
	if err != nil {
		if errors.Is(err, complaint.ErrNoCollege) {
			respondError(c, http.StatusBadRequest, "Your account is not linked to a college")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to submit complaint")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Complaint submitted successfully!",
		"complaint": created,
	})
}

// GetComplaint returns one complaint with its student name resolved. Any
// authenticated principal may view it.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid complaint id")
		return
	}
	detail, err := h.Complaints.Get(uint(id))
	if err != nil {
		if errors.Is(err, complaint.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Complaint not found!")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load complaint")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "complaint": detail})
}

// AssignComplaint hands a complaint to a staff member. College only; the
// complaint must belong to the calling college.
func (h *Handler) AssignComplaint(c *gin.Context) {
	p, _ := principalFrom(c)

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid assign request")
		return
	}

	if err := h.Complaints.Assign(p.UserID, req.ComplaintID, req.StaffID); err != nil {
		switch {
		case errors.Is(err, complaint.ErrUnauthorized):
			respondError(c, http.StatusForbidden, "Unauthorized")
		case errors.Is(err, complaint.ErrNotFound):
			respondError(c, http.StatusNotFound, "Complaint or staff member not found!")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to assign complaint")
		}
		return
	}
	respondOK(c, "Complaint assigned")
}

// UpdateComplaintStatus moves a complaint within the closed status set.
// Staff only; the caller must be the assigned staff member.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	p, _ := principalFrom(c)

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status request")
		return
	}

	if err := h.Complaints.UpdateStatus(p.UserID, req.ComplaintID, req.Status); err != nil {
		switch {
		case errors.Is(err, complaint.ErrUnauthorized):
			respondError(c, http.StatusForbidden, "Unauthorized")
		case errors.Is(err, complaint.ErrNotFound):
			respondError(c, http.StatusNotFound, "Complaint not found!")
		case errors.Is(err, complaint.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "Invalid status")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}
	respondOK(c, "Status updated")
}
