package dto

import (
	"time"
)

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100,upperfirst"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	TeamID      uint   `json:"teamId" validate:"required,gt=0"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100,upperfirst"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	TeamID      *uint   `json:"teamId" validate:"omitempty,gt=0"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeamID      uint      `json:"teamId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectFilterRequest struct {
	TeamID uint   `query:"team_id" validate:"omitempty,gt=0"`
	Sort   string `query:"sort" validate:"omitempty,oneof=id name team_id created_at"`
	Skip   int    `query:"skip" validate:"omitempty,min=0"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
