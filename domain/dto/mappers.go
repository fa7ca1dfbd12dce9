package dto

import (
	"taskhub/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func TeamToTeamResponse(team *models.Team) *TeamResponse {
	if team == nil {
		return nil
	}
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func ProjectToProjectResponse(project *models.Project) *ProjectResponse {
	if project == nil {
		return nil
	}
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		TeamID:      project.TeamID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Deadline:    task.Deadline,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func CommentToCommentResponse(comment *models.Comment) *CommentResponse {
	if comment == nil {
		return nil
	}
	return &CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
	}
}
