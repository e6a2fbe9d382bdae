package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
)

func TestAssignProject_DuplicatePairConflicts(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	_, err := NewAssignmentService().AssignProject(f.pm.UserID, dto.AssignProjectRequest{
		ProjectID: f.project.ProjectID,
		TeamID:    f.team.TeamID,
		Deadline:  deadline(),
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestAssignProject_UnknownTeam(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	_, err := NewAssignmentService().AssignProject(f.pm.UserID, dto.AssignProjectRequest{
		ProjectID: f.project.ProjectID,
		TeamID:    "Team-99999",
		Deadline:  deadline(),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUnassignProject_CascadeLeavesNoSubtasksBehind(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Doomed", nil)
	f.createSubtask(t, task.TaskID, "Child", f.member2.UserID)

	counts, err := NewAssignmentService().UnassignProject(f.pm.UserID, false, dto.UnassignProjectRequest{
		ProjectID: f.project.ProjectID,
		TeamID:    f.team.TeamID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Subtasks)
	assert.Equal(t, int64(1), counts.Tasks)
	assert.Equal(t, int64(1), counts.Logs)

	assert.Zero(t, countRows(t, &models.Subtask{}))
	assert.Zero(t, countRows(t, &models.Task{}))
	assert.Zero(t, countRows(t, &models.AssignedProjectLog{}))
	// Unassigning touches neither the project nor the team
	assert.Equal(t, int64(1), countRows(t, &models.Project{}))
	assert.Equal(t, int64(1), countRows(t, &models.Team{}))
}

func TestUnassignProject_MissingLogYieldsZeroCounts(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	other, err := NewProjectService().CreateProject(f.pm.UserID, dto.CreateProjectRequest{Title: "Never assigned"})
	require.NoError(t, err)

	counts, err := NewAssignmentService().UnassignProject(f.pm.UserID, false, dto.UnassignProjectRequest{
		ProjectID: other.ProjectID,
		TeamID:    f.team.TeamID,
	})
	require.NoError(t, err)
	assert.Zero(t, counts.Subtasks)
	assert.Zero(t, counts.Tasks)
	assert.Zero(t, counts.Logs)
}

func TestListAssignments_MemberSeesOwnTeamOnly(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	logs, err := NewAssignmentService().ListAssignments(f.member2.UserID, models.UserTypeUser, "", "")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, f.log.AssignProjectID, logs[0].AssignProjectID)

	stranger := registerUser(t, "Sven Stranger", "sven@teamtrack.io")
	logs, err = NewAssignmentService().ListAssignments(stranger.UserID, models.UserTypeUser, "", "")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
