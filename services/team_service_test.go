package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
)

func TestCreateTeam_LeaderMustBeMember(t *testing.T) {
	setupTestDB(t)
	pm := createManager(t, "Paula Manager", "paula@teamtrack.io")
	lead := registerUser(t, "Lena Leader", "lena@teamtrack.io")
	other := registerUser(t, "Mike Member", "mike@teamtrack.io")

	_, err := NewTeamService().CreateTeam(pm.UserID, dto.CreateTeamRequest{
		TeamName:   "Broken",
		TeamLeader: lead.UserID,
		Members:    []string{other.UserID},
	})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestCreateTeam_UnknownMember(t *testing.T) {
	setupTestDB(t)
	pm := createManager(t, "Paula Manager", "paula@teamtrack.io")
	lead := registerUser(t, "Lena Leader", "lena@teamtrack.io")

	_, err := NewTeamService().CreateTeam(pm.UserID, dto.CreateTeamRequest{
		TeamName:   "Ghosts",
		TeamLeader: lead.UserID,
		Members:    []string{lead.UserID, "User-99999"},
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListTeams_ScopedByRole(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	// The creating manager sees the team
	teams, err := NewTeamService().ListTeams(f.pm.UserID, models.UserTypeProjectManager)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	// A member sees it too
	teams, err = NewTeamService().ListTeams(f.member2.UserID, models.UserTypeUser)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	// A stranger does not
	stranger := registerUser(t, "Sven Stranger", "sven@teamtrack.io")
	teams, err = NewTeamService().ListTeams(stranger.UserID, models.UserTypeUser)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestDeleteTeam_CascadesToSubtasksTasksAndLogs(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Doomed", nil)
	f.createSubtask(t, task.TaskID, "Doomed subtask", f.member2.UserID)
	f.createSubtask(t, task.TaskID, "Another one", f.member3.UserID)

	counts, err := NewTeamService().DeleteTeam(f.team.TeamID, f.pm.UserID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Subtasks)
	assert.Equal(t, int64(1), counts.Tasks)
	assert.Equal(t, int64(1), counts.Logs)
	assert.Equal(t, int64(1), counts.Teams)

	assert.Zero(t, countRows(t, &models.Subtask{}))
	assert.Zero(t, countRows(t, &models.Task{}))
	assert.Zero(t, countRows(t, &models.AssignedProjectLog{}))
	assert.Zero(t, countRows(t, &models.Team{}))
	// The project itself survives a team deletion
	assert.Equal(t, int64(1), countRows(t, &models.Project{}))
}

func TestDeleteTeam_EmptyStagesReportZero(t *testing.T) {
	setupTestDB(t)
	pm := createManager(t, "Paula Manager", "paula@teamtrack.io")
	lead := registerUser(t, "Lena Leader", "lena@teamtrack.io")

	team, err := NewTeamService().CreateTeam(pm.UserID, dto.CreateTeamRequest{
		TeamName:   "Fresh",
		TeamLeader: lead.UserID,
		Members:    []string{lead.UserID},
	})
	require.NoError(t, err)

	counts, err := NewTeamService().DeleteTeam(team.TeamID, pm.UserID, false)
	require.NoError(t, err)
	assert.Zero(t, counts.Subtasks)
	assert.Zero(t, counts.Tasks)
	assert.Zero(t, counts.Logs)
	assert.Equal(t, int64(1), counts.Teams)
}

func TestDeleteTeam_CreatorOnly(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	other := createManager(t, "Pete Manager", "pete@teamtrack.io")

	_, err := NewTeamService().DeleteTeam(f.team.TeamID, other.UserID, false)
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, int64(1), countRows(t, &models.Team{}))
}
