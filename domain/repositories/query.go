package repositories

import (
	"time"

	"taskhub/domain/models"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Page is offset-based pagination shared by every list query.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the page to sane bounds: negative skip becomes 0,
// a missing or oversized limit falls back to the cap. Listing past the
// end of a result set yields an empty page, never an error.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// UserQuery and TeamQuery carry no filters; they exist so listing is
// uniform across entities.
type UserQuery struct {
	Sort string
	Page
}

type TeamQuery struct {
	Sort string
	Page
}

type ProjectQuery struct {
	TeamID *uint
	Sort   string
	Page
}

// TaskQuery filters are conjunctive; a nil field imposes no
// constraint. DeadlineBefore is an inclusive upper bound.
type TaskQuery struct {
	ProjectID      *uint
	Status         *models.TaskStatus
	Priority       *models.TaskPriority
	DeadlineBefore *time.Time
	Sort           string
	Page
}

type CommentQuery struct {
	TaskID *uint
	Sort   string
	Page
}

// OrderClause maps a sort key onto a whitelisted column. Anything
// outside the whitelist (including the empty key) falls back to the
// primary key so pagination stays deterministic.
func OrderClause(sort string, allowed ...string) string {
	for _, col := range allowed {
		if sort == col {
			return col + " ASC"
		}
	}
	return "id ASC"
}

func (q UserQuery) OrderClause() string {
	return OrderClause(q.Sort, "id", "username", "email", "created_at")
}

func (q TeamQuery) OrderClause() string {
	return OrderClause(q.Sort, "id", "name", "created_at")
}

func (q ProjectQuery) OrderClause() string {
	return OrderClause(q.Sort, "id", "name", "team_id", "created_at")
}

func (q TaskQuery) OrderClause() string {
	return OrderClause(q.Sort, "id", "title", "status", "priority", "deadline", "created_at")
}

func (q CommentQuery) OrderClause() string {
	return OrderClause(q.Sort, "id", "task_id", "user_id", "created_at")
}
