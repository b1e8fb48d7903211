package models

// College is an institution account. Its code is issued at signup and is
// what students and staff use to attach themselves to it.
type College struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Email       string `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password    string `gorm:"type:text;not null" json:"-"` // bcrypt hash
	CollegeCode string `gorm:"type:varchar(6);uniqueIndex" json:"college_code"`
}
