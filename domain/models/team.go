package models

import (
	"time"
)

type Team struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
	Members     []User `gorm:"many2many:team_members"`
	Projects    []Project
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember is the user<->team join row. The composite primary key
// doubles as the uniqueness constraint that makes concurrent
// add-member calls safe.
type TeamMember struct {
	TeamID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
