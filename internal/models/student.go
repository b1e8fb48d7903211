package models

// Student is a complaint-submitting account bound to a college by code.
type Student struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Email    string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"` // bcrypt hash
	// CollegeCode binds the student to a college by value. There is no
	// foreign key; a deleted college orphans the reference.
	CollegeCode string `gorm:"type:varchar(6);index" json:"college_code"`
}
