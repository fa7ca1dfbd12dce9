package dto

import (
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200,notallcaps"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    *time.Time `json:"deadline" validate:"omitempty,min_lead"`
	ProjectID   uint       `json:"projectId" validate:"required,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=200,notallcaps"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    *time.Time `json:"deadline" validate:"omitempty,min_lead"`
	ProjectID   *uint      `json:"projectId" validate:"omitempty,gt=0"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	ProjectID   uint       `json:"projectId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskFilterRequest struct {
	ProjectID      uint       `query:"project_id" validate:"omitempty,gt=0"`
	Status         string     `query:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority       string     `query:"priority" validate:"omitempty,oneof=low medium high"`
	DeadlineBefore *time.Time `query:"deadline_before"`
	Sort           string     `query:"sort" validate:"omitempty,oneof=id title status priority deadline created_at"`
	Skip           int        `query:"skip" validate:"omitempty,min=0"`
	Limit          int        `query:"limit" validate:"omitempty,min=1,max=100"`
}
