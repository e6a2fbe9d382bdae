package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/repositories"
)

const adminEmail = "admin@teamtrack.io"

func TestDeleteProjectManagers_CascadeRemovesEverythingTheyOwn(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Will vanish", nil)
	f.createSubtask(t, task.TaskID, "So will this", f.member2.UserID)

	result, err := NewAdminService().DeleteProjectManagers(adminEmail, []string{f.pm.Email})
	require.NoError(t, err)

	assert.Empty(t, result.InvalidOrSkippedEmails)
	assert.Equal(t, []string{f.pm.Email}, result.DeletedEmails)
	assert.Equal(t, int64(1), result.Deleted.Users)
	assert.Equal(t, int64(1), result.Deleted.Tasks)
	assert.Equal(t, int64(1), result.Deleted.Subtasks)
	assert.Equal(t, int64(1), result.Deleted.Logs)
	assert.Equal(t, int64(1), result.Deleted.Teams)
	assert.Equal(t, int64(1), result.Deleted.Projects)

	// Nothing referencing the deleted manager survives in any store
	assert.Zero(t, countRows(t, &models.Task{}))
	assert.Zero(t, countRows(t, &models.Subtask{}))
	assert.Zero(t, countRows(t, &models.AssignedProjectLog{}))
	assert.Zero(t, countRows(t, &models.Team{}))
	assert.Zero(t, countRows(t, &models.Project{}))

	// Plain members keep their accounts
	_, err = repositories.NewUserRepository().FindByEmail(f.member2.Email)
	require.NoError(t, err)
}

func TestDeleteProjectManagers_SkipsInvalidAndSelf(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	result, err := NewAdminService().DeleteProjectManagers(adminEmail, []string{
		f.pm.Email,
		"not-an-email",
		"ADMIN@teamtrack.io", // self, case-insensitive
	})
	require.NoError(t, err)

	require.Len(t, result.InvalidOrSkippedEmails, 2)
	reasons := map[string]string{}
	for _, s := range result.InvalidOrSkippedEmails {
		reasons[s.Email] = s.Reason
	}
	assert.Equal(t, "Invalid email format", reasons["not-an-email"])
	assert.Equal(t, "Admin cannot delete self", reasons["ADMIN@teamtrack.io"])

	// The valid manager was still removed
	assert.Equal(t, []string{f.pm.Email}, result.DeletedEmails)
	assert.Zero(t, countRows(t, &models.Project{}))
}

func TestDeleteProjectManagers_SkipsNonManagers(t *testing.T) {
	setupTestDB(t)
	plain := registerUser(t, "Rita Regular", "rita@teamtrack.io")

	result, err := NewAdminService().DeleteProjectManagers(adminEmail, []string{plain.Email, "ghost@teamtrack.io"})
	require.NoError(t, err)

	require.Len(t, result.InvalidOrSkippedEmails, 2)
	for _, s := range result.InvalidOrSkippedEmails {
		assert.Equal(t, "Not a project manager", s.Reason)
	}
	assert.Empty(t, result.DeletedEmails)
	assert.Zero(t, result.Deleted.Users)
	// The plain account is untouched
	assert.Equal(t, int64(1), countRows(t, &models.User{}))
}

func TestCreateProjectManager_PromotesExistingAccount(t *testing.T) {
	setupTestDB(t)
	plain := registerUser(t, "Rita Regular", "rita@teamtrack.io")

	promoted, err := NewAdminService().CreateProjectManager(dto.CreateProjectManagerRequest{
		Name: plain.Name, Email: plain.Email, Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, plain.UserID, promoted.UserID)
	assert.Equal(t, models.UserTypeProjectManager, promoted.UserType)

	// Promoting twice is a conflict
	_, err = NewAdminService().CreateProjectManager(dto.CreateProjectManagerRequest{
		Name: plain.Name, Email: plain.Email, Password: "hunter22",
	})
	require.ErrorIs(t, err, ErrConflict)
}
