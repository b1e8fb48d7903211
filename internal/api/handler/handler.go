// Package handler wires the HTTP surface: gin handlers, session
// middleware and the route table. Responses use a {success, message}
// envelope; typed payloads ride alongside.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/complaint"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/notification"
	"github.com/Mohd-obaidullah/complaint-box/internal/registry"
	"github.com/Mohd-obaidullah/complaint-box/internal/reset"
	"github.com/Mohd-obaidullah/complaint-box/internal/upload"
)

// Handler carries the services the HTTP layer dispatches into.
type Handler struct {
	Credentials   *auth.Service
	Sessions      *auth.Sessions
	Registry      *registry.Service
	Complaints    *complaint.Service
	Notifications *notification.Service
	Resets        *reset.Service
	Uploads       *upload.Store
}

// NewHandler builds the handler and registers the custom binding
// validators.
func NewHandler(
	credentials *auth.Service,
	sessions *auth.Sessions,
	reg *registry.Service,
	complaints *complaint.Service,
	notifications *notification.Service,
	resets *reset.Service,
	uploads *upload.Store,
) *Handler {
	registerValidators()
	return &Handler{
		Credentials:   credentials,
		Sessions:      sessions,
		Registry:      reg,
		Complaints:    complaints,
		Notifications: notifications,
		Resets:        resets,
		Uploads:       uploads,
	}
}

// Routes registers every endpoint on the router.
func (h *Handler) Routes(r *gin.Engine) {
	r.Use(h.SessionMiddleware())

	r.GET("/", h.Index)
	r.GET("/about", h.About)

	r.POST("/student/signup", h.StudentSignup)
	r.POST("/student/login", h.Login(models.RoleStudent))
	r.GET("/student/dashboard", h.RequireRole(models.RoleStudent), h.StudentDashboard)

	r.POST("/college/signup", h.CollegeSignup)
	r.POST("/college/login", h.Login(models.RoleCollege))
	r.GET("/college/dashboard", h.RequireRole(models.RoleCollege), h.CollegeDashboard)
	r.GET("/college/add-staff", h.RequireRole(models.RoleCollege), h.AddStaffForm)
	r.POST("/college/add-staff", h.RequireRole(models.RoleCollege), h.AddStaff)

	r.POST("/staff/signup", h.StaffSignup)
	r.POST("/staff/login", h.Login(models.RoleStaff))
	r.GET("/staff/dashboard", h.RequireRole(models.RoleStaff), h.StaffDashboard)

	r.GET("/logout", h.Logout)

	r.GET("/complaint/new", h.RequireRole(models.RoleStudent), h.NewComplaintForm)
	r.POST("/complaint/new", h.RequireRole(models.RoleStudent), h.CreateComplaint)
	r.GET("/complaint/:id", h.RequireAuth(), h.GetComplaint)
	r.POST("/complaint/assign", h.RequireRole(models.RoleCollege), h.AssignComplaint)
	r.POST("/complaint/update-status", h.RequireRole(models.RoleStaff), h.UpdateComplaintStatus)

	r.GET("/notifications", h.ListNotifications)
	r.GET("/notifications/unread-count", h.UnreadNotificationCount)
	r.POST("/notifications/mark-read", h.MarkNotificationsRead)

	r.GET("/forgot-password/:role", h.ForgotPasswordForm)
	r.POST("/forgot-password/:role", h.ForgotPassword)
	r.GET("/reset-password/:token", h.ResetPasswordForm)
	r.POST("/reset-password/:token", h.ResetPassword)

	r.GET("/download/:filename", h.Download)
}

// Index describes the service.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": "complaint-box",
		"message": "Multi-role complaint management: students submit, colleges assign, staff resolve.",
	})
}

// About lists the actor roles.
func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"roles":   []string{"student", "college", "staff"},
	})
}

func respondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}
