package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global handle at a fresh in-memory database with
// the full schema migrated. One database per test.
func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Shared-cache in-memory sqlite wants a single connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	t.Cleanup(func() { sqlDB.Close() })
}

// fixture is the standard world most tests need: a manager, a three-person
// team (one of them leader), a pending project assigned to the team.
type fixture struct {
	pm      models.User
	leader  models.User
	member2 models.User
	member3 models.User
	team    models.Team
	project models.Project
	log     models.AssignedProjectLog
}

func registerUser(t *testing.T, name, email string) models.User {
	t.Helper()
	user, err := Register(dto.RegisterRequest{Name: name, Email: email, Password: "hunter22"})
	require.NoError(t, err)
	return *user
}

func createManager(t *testing.T, name, email string) models.User {
	t.Helper()
	user, err := NewAdminService().CreateProjectManager(dto.CreateProjectManagerRequest{
		Name: name, Email: email, Password: "hunter22",
	})
	require.NoError(t, err)
	return user
}

func deadline() string {
	return time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
}

func buildFixture(t *testing.T) fixture {
	t.Helper()

	var f fixture
	f.pm = createManager(t, "Paula Manager", "paula@teamtrack.io")
	f.leader = registerUser(t, "Lena Leader", "lena@teamtrack.io")
	f.member2 = registerUser(t, "Mike Member", "mike@teamtrack.io")
	f.member3 = registerUser(t, "Nina Member", "nina@teamtrack.io")

	team, err := NewTeamService().CreateTeam(f.pm.UserID, dto.CreateTeamRequest{
		TeamName:   "Platform",
		TeamLeader: f.leader.UserID,
		Members:    []string{f.leader.UserID, f.member2.UserID, f.member3.UserID},
	})
	require.NoError(t, err)
	f.team = team

	project, err := NewProjectService().CreateProject(f.pm.UserID, dto.CreateProjectRequest{
		Title:       "Billing revamp",
		Description: "Replace the invoicing pipeline",
	})
	require.NoError(t, err)
	f.project = project

	logEntry, err := NewAssignmentService().AssignProject(f.pm.UserID, dto.AssignProjectRequest{
		ProjectID: project.ProjectID,
		TeamID:    team.TeamID,
		Deadline:  deadline(),
	})
	require.NoError(t, err)
	f.log = logEntry

	return f
}

// createTask adds a task for the fixture's assignment
func (f fixture) createTask(t *testing.T, title string, assignees []string) models.Task {
	t.Helper()
	task, err := NewTaskService().CreateTask(f.pm.UserID, dto.CreateTaskRequest{
		ProjectID:  f.project.ProjectID,
		TeamID:     f.team.TeamID,
		Title:      title,
		Deadline:   deadline(),
		AssignedTo: assignees,
	})
	require.NoError(t, err)
	return task
}

// createSubtask adds a subtask under the given task as the fixture's leader
func (f fixture) createSubtask(t *testing.T, taskID, title, assignedTo string) models.Subtask {
	t.Helper()
	subtask, err := NewSubtaskService().CreateSubtask(f.leader.UserID, dto.CreateSubtaskRequest{
		TaskID:     taskID,
		Title:      title,
		Deadline:   deadline(),
		AssignedTo: assignedTo,
	})
	require.NoError(t, err)
	return subtask
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}
