package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Page
		wantSkip  int
		wantLimit int
	}{
		{"zero value", Page{}, 0, DefaultLimit},
		{"negative skip", Page{Skip: -5, Limit: 10}, 0, 10},
		{"limit over cap", Page{Skip: 0, Limit: 500}, 0, MaxLimit},
		{"negative limit", Page{Skip: 3, Limit: -1}, 3, DefaultLimit},
		{"within bounds", Page{Skip: 20, Limit: 50}, 20, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantSkip, got.Skip)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "name ASC", OrderClause("name", "id", "name"))
	assert.Equal(t, "id ASC", OrderClause("", "id", "name"))

	// Anything outside the whitelist falls back to the primary key,
	// including injection attempts.
	assert.Equal(t, "id ASC", OrderClause("name; DROP TABLE users", "id", "name"))
	assert.Equal(t, "id ASC", OrderClause("created_at", "id", "name"))
}

func TestQueryOrderClauses(t *testing.T) {
	assert.Equal(t, "username ASC", UserQuery{Sort: "username"}.OrderClause())
	assert.Equal(t, "deadline ASC", TaskQuery{Sort: "deadline"}.OrderClause())
	assert.Equal(t, "id ASC", TaskQuery{Sort: "deadline_before"}.OrderClause())
	assert.Equal(t, "task_id ASC", CommentQuery{Sort: "task_id"}.OrderClause())
}
