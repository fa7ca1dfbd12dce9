package models

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	ErrAlreadyMember = errors.New("user is already a member of this team")
	ErrNotMember     = errors.New("user is not a member of this team")

	// ErrHasChildren blocks deletion of an entity that other rows
	// still reference.
	ErrHasChildren = errors.New("entity has dependent records")
)
