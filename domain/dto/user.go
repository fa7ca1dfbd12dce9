package dto

import (
	"time"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100,password"`
}

// UpdateUserRequest uses pointer fields so an absent field is
// distinguishable from an explicit zero value; only supplied fields
// are validated and merged.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50,username"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=100,password"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserFilterRequest struct {
	Sort  string `query:"sort" validate:"omitempty,oneof=id username email created_at"`
	Skip  int    `query:"skip" validate:"omitempty,min=0"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
