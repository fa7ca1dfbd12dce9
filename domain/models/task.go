package models

import (
	"time"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          uint         `gorm:"primaryKey"`
	Title       string       `gorm:"size:200;not null"`
	Description string       `gorm:"size:2000"`
	Status      TaskStatus   `gorm:"size:20;default:'todo'"`
	Priority    TaskPriority `gorm:"size:20;default:'medium'"`
	Deadline    *time.Time
	ProjectID   uint    `gorm:"not null;index"`
	Project     Project `gorm:"foreignKey:ProjectID"`
	Comments    []Comment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
