package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/registry"
)

type studentSignupRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Password    string `json:"password" form:"password" binding:"required,min=6"`
	CollegeCode string `json:"college_code" form:"college_code" binding:"required,collegecode"`
}

type collegeSignupRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type staffSignupRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Password    string `json:"password" form:"password" binding:"required,min=6"`
	CollegeCode string `json:"college_code" form:"college_code" binding:"omitempty,collegecode"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// StudentSignup creates a student account. The college code is mandatory
// and must belong to a registered college.
func (h *Handler) StudentSignup(c *gin.Context) {
	var req studentSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid signup request")
		return
	}

	college, err := h.Registry.ValidateCode(req.CollegeCode)
	if err != nil {
		if errors.Is(err, registry.ErrInvalidCollegeCode) {
			respondError(c, http.StatusBadRequest, "Invalid college code! Please check and try again.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Signup failed")
		return
	}

	if _, err := h.Credentials.RegisterStudent(req.Name, req.Email, req.Password, college.CollegeCode); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			respondError(c, http.StatusConflict, "Email already exists!")
			return
		}
		respondError(c, http.StatusInternalServerError, "Signup failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created successfully! Please login."})
}

// CollegeSignup creates a college account and returns its freshly issued
// code, which students and staff use to attach themselves.
func (h *Handler) CollegeSignup(c *gin.Context) {
	var req collegeSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid signup request")
		return
	}

	college, err := h.Registry.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateEmail) {
			respondError(c, http.StatusConflict, "Email already exists!")
			return
		}
		respondError(c, http.StatusInternalServerError, "Signup failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"college_code": college.CollegeCode,
		"message": fmt.Sprintf(
			"Account created successfully! Your College Code is: %s. Share it with your students and staff.",
			college.CollegeCode),
	})
}

// StaffSignup creates a staff account, bound to a college when a code is
// supplied.
func (h *Handler) StaffSignup(c *gin.Context) {
	var req staffSignupRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid signup request")
		return
	}

	var collegeID *uint
	if req.CollegeCode != "" {
		college, err := h.Registry.ValidateCode(req.CollegeCode)
		if err != nil {
			if errors.Is(err, registry.ErrInvalidCollegeCode) {
				respondError(c, http.StatusBadRequest, "Invalid college code! Please check and try again.")
				return
			}
			respondError(c, http.StatusInternalServerError, "Signup failed")
			return
		}
		collegeID = &college.ID
	}

	if _, err := h.Credentials.RegisterStaff(req.Name, req.Email, req.Password, collegeID); err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			respondError(c, http.StatusConflict, "Email already exists!")
			return
		}
		respondError(c, http.StatusInternalServerError, "Signup failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created successfully! Please login."})
}

// Login verifies credentials for the role and opens a session. Failures
// are deliberately generic.
func (h *Handler) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBind(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid login request")
			return
		}

		principal, err := h.Credentials.Login(role, req.Email, req.Password)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid email or password!")
			return
		}

		token, err := h.Sessions.Create(principal)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Login failed")
			return
		}
		c.SetCookie(config.SessionCookieName, token, int(h.Sessions.TTL().Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "user": principal})
	}
}

// Logout destroys the session and clears the cookie. Always succeeds.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(config.SessionCookieName); err == nil && token != "" {
		_ = h.Sessions.Destroy(token)
	}
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", false, true)
	respondOK(c, "Logged out successfully!")
}
