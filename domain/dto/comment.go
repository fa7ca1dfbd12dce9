package dto

import (
	"time"
)

type CreateCommentRequest struct {
	Text   string `json:"text" validate:"required,min=1,max=2000,notblank,clean_text"`
	TaskID uint   `json:"taskId" validate:"required,gt=0"`
	UserID uint   `json:"userId" validate:"required,gt=0"`
}

// UpdateCommentRequest only allows editing the text; a comment never
// moves between tasks or authors.
type UpdateCommentRequest struct {
	Text *string `json:"text" validate:"omitempty,min=1,max=2000,notblank,clean_text"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	TaskID    uint      `json:"taskId"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentFilterRequest struct {
	TaskID uint   `query:"task_id" validate:"omitempty,gt=0"`
	Sort   string `query:"sort" validate:"omitempty,oneof=id task_id user_id created_at"`
	Skip   int    `query:"skip" validate:"omitempty,min=0"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
