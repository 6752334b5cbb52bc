package models

import "gorm.io/gorm"

type Room struct {
	gorm.Model

	Name        string `gorm:"size:64;uniqueIndex" json:"name"`
	Type        string `gorm:"size:64" json:"type"` // dorm / private / family
	Description string `gorm:"type:text" json:"description,omitempty"`

	Beds []Bed `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
}

type Bed struct {
	gorm.Model

	RoomID uint   `gorm:"column:room_id;index" json:"roomId"`
	Label  string `gorm:"size:32" json:"label"`
	Status string `gorm:"size:32;default:available" json:"status"`
}
