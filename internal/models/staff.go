package models

// Staff is a complaint-resolving account, optionally attached to a college.
type Staff struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Email    string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"` // bcrypt hash
	// CollegeID is nil for staff who signed up without a college code.
	CollegeID *uint `gorm:"index" json:"college_id"`
}
