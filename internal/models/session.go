package models

import "time"

// Principal identifies the authenticated actor behind a request. It is
// built once by the session middleware and passed explicitly to services.
type Principal struct {
	Role   Role   `json:"role"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	// CollegeCode is set for students, CollegeID for staff.
	CollegeCode string `json:"college_code,omitempty"`
	CollegeID   *uint  `json:"college_id,omitempty"`
}

// Session is the server-side session payload kept in Redis under the
// session id, with the configured TTL.
type Session struct {
	ID        string    `json:"id"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"created_at"`
}
