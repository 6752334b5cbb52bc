package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `gorm:"size:255" json:"fullName"`
	Username string `gorm:"size:255;uniqueIndex" json:"username"`
	Password string `gorm:"size:255" json:"-"`
}
