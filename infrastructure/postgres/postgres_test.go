package postgres_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskhub/domain/models"
	"taskhub/infrastructure/postgres"
)

// newTestDB opens a throwaway sqlite database with the same gorm
// configuration the production connection uses, so error translation
// behaves identically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "taskhub_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return db
}

var seedSeq int

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	seedSeq++
	user := &models.User{
		Username: fmt.Sprintf("user_%d", seedSeq),
		Email:    fmt.Sprintf("user_%d@example.com", seedSeq),
		Password: "Secret12",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTeam(t *testing.T, db *gorm.DB) *models.Team {
	t.Helper()
	seedSeq++
	team := &models.Team{Name: fmt.Sprintf("Team %d", seedSeq)}
	require.NoError(t, db.Create(team).Error)
	return team
}

func seedProject(t *testing.T, db *gorm.DB, teamID uint) *models.Project {
	t.Helper()
	seedSeq++
	project := &models.Project{Name: fmt.Sprintf("Project %d", seedSeq), TeamID: teamID}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedTask(t *testing.T, db *gorm.DB, projectID uint) *models.Task {
	t.Helper()
	seedSeq++
	task := &models.Task{
		Title:     fmt.Sprintf("Task %d", seedSeq),
		Status:    models.StatusTodo,
		Priority:  models.PriorityMedium,
		ProjectID: projectID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func seedComment(t *testing.T, db *gorm.DB, taskID, userID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: "Looks good", TaskID: taskID, UserID: userID}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func ptr[T any](v T) *T {
	return &v
}
