package models

import "fmt"

// Role identifies one of the three principal kinds. It is stored as plain
// text on notifications, reset tokens and sessions.
type Role string

const (
	RoleStudent Role = "student"
	RoleCollege Role = "college"
	RoleStaff   Role = "staff"
)

// ParseRole validates a role tag coming from a URL segment or payload.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleCollege, RoleStaff:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }
