package models

import "time"

type CV struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	FileName  string    `gorm:"type:text;not null" json:"file_name"`
	FilePath  string    `gorm:"type:text;not null" json:"file_path"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (CV) TableName() string {
	return "cvs"
}
