package models

import (
	"time"
)

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"size:2000;not null"`
	TaskID    uint   `gorm:"not null;index"`
	Task      Task   `gorm:"foreignKey:TaskID"`
	UserID    uint   `gorm:"not null;index"`
	User      User   `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

func (Comment) TableName() string {
	return "comments"
}
