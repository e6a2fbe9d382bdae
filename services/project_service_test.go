package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
)

func TestCompleteProject_OnlyFromInProgress(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	// Pending projects cannot be completed
	_, err := NewProjectService().CompleteProject(f.project.ProjectID, f.pm.UserID, false)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), string(models.ProjectPending))

	// First task flips the project, then completion works
	f.createTask(t, "Kickoff", nil)
	project, err := NewProjectService().CompleteProject(f.project.ProjectID, f.pm.UserID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectCompleted, project.Status)
}

func TestUpdateProject_OwnerOnly(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	other := createManager(t, "Pete Manager", "pete@teamtrack.io")

	_, err := NewProjectService().UpdateProject(f.project.ProjectID, other.UserID, dto.UpdateProjectRequest{
		Title: "Hijacked",
	})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := NewProjectService().UpdateProject(f.project.ProjectID, f.pm.UserID, dto.UpdateProjectRequest{
		Title:       "Billing revamp v2",
		Description: "Now with dunning",
	})
	require.NoError(t, err)
	assert.Equal(t, "Billing revamp v2", updated.Title)
}

func TestDeleteProject_CascadeSparesTeams(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Doomed", nil)
	f.createSubtask(t, task.TaskID, "Child", f.member2.UserID)

	counts, err := NewProjectService().DeleteProject(f.project.ProjectID, f.pm.UserID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Subtasks)
	assert.Equal(t, int64(1), counts.Tasks)
	assert.Equal(t, int64(1), counts.Logs)
	assert.Equal(t, int64(1), counts.Projects)

	assert.Zero(t, countRows(t, &models.Project{}))
	assert.Zero(t, countRows(t, &models.Task{}))
	// The team belongs to the manager, not the project
	assert.Equal(t, int64(1), countRows(t, &models.Team{}))
}

func TestListProjects_ManagerScopedWithPagination(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	other := createManager(t, "Pete Manager", "pete@teamtrack.io")
	_, err := NewProjectService().CreateProject(other.UserID, dto.CreateProjectRequest{Title: "Someone else's"})
	require.NoError(t, err)

	resp, err := NewProjectService().ListProjects(dto.ProjectFilter{UserID: f.pm.UserID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, f.project.ProjectID, resp.Projects[0].ProjectID)

	// Admin sees both, one per page
	resp, err = NewProjectService().ListProjects(dto.ProjectFilter{IsAdmin: true, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Projects, 1)
}

func TestGetProjectDetail_JoinsAssignmentsAndScopesAccess(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	detail, err := NewProjectService().GetProjectDetail(f.project.ProjectID, f.member2.UserID, false)
	require.NoError(t, err)
	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, f.team.TeamID, detail.Assignments[0].TeamID)
	assert.Equal(t, "Platform", detail.Assignments[0].TeamName)

	stranger := registerUser(t, "Sven Stranger", "sven@teamtrack.io")
	_, err = NewProjectService().GetProjectDetail(f.project.ProjectID, stranger.UserID, false)
	require.ErrorIs(t, err, ErrForbidden)
}
