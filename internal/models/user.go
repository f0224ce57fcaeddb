package models

import "time"

// User is stored with the password exactly as submitted. The column keeps its
// historical password_hash name even though no hashing is applied.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
