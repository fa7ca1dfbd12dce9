package dto

import (
	"time"
)

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100,notblank"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100,notblank"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type TeamResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TeamFilterRequest struct {
	Sort  string `query:"sort" validate:"omitempty,oneof=id name created_at"`
	Skip  int    `query:"skip" validate:"omitempty,min=0"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
