package models

import (
	"time"
)

type Project struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:1000"`
	TeamID      uint   `gorm:"not null;index"`
	Team        Team   `gorm:"foreignKey:TeamID"`
	Tasks       []Task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Project) TableName() string {
	return "projects"
}
