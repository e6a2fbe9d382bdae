package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
)

func TestCreateTask_AppendsToLogAndFlipsProject(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	task := f.createTask(t, "Wire up invoices", nil)

	assert.Equal(t, "Task-00001", task.TaskID)
	assert.Equal(t, models.StatusPending, task.Status)
	// Empty assignedTo fans out to the whole team
	assert.ElementsMatch(t,
		[]string{f.leader.UserID, f.member2.UserID, f.member3.UserID},
		[]string(task.AssignedTo))

	logEntry, err := NewAssignmentService().ListAssignments(f.pm.UserID, models.UserTypeProjectManager, f.project.ProjectID, "")
	require.NoError(t, err)
	require.Len(t, logEntry, 1)
	assert.Contains(t, []string(logEntry[0].TasksIDs), task.TaskID)

	project, err := NewProjectService().GetProjectDetail(f.project.ProjectID, f.pm.UserID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, project.Project.Status)
}

func TestCreateTask_SingleAssignee(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	task := f.createTask(t, "Schema migration", []string{f.member2.UserID})

	assert.Equal(t, []string{f.member2.UserID}, []string(task.AssignedTo))
}

func TestCreateTask_RejectsNonMember(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	outsider := registerUser(t, "Oscar Outsider", "oscar@teamtrack.io")

	_, err := NewTaskService().CreateTask(f.pm.UserID, dto.CreateTaskRequest{
		ProjectID:  f.project.ProjectID,
		TeamID:     f.team.TeamID,
		Title:      "Sneaky task",
		Deadline:   deadline(),
		AssignedTo: []string{outsider.UserID},
	})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Zero(t, countRows(t, &models.Task{}))
}

func TestCreateTask_WithoutAssignmentPersistsNothing(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)

	// A second project that was never assigned to the team
	project, err := NewProjectService().CreateProject(f.pm.UserID, dto.CreateProjectRequest{Title: "Unassigned"})
	require.NoError(t, err)

	_, err = NewTaskService().CreateTask(f.pm.UserID, dto.CreateTaskRequest{
		ProjectID: project.ProjectID,
		TeamID:    f.team.TeamID,
		Title:     "Orphan-to-be",
		Deadline:  deadline(),
	})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, countRows(t, &models.Task{}))
}

func TestCreateTask_OnlyOwningManager(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	other := createManager(t, "Pete Manager", "pete@teamtrack.io")

	_, err := NewTaskService().CreateTask(other.UserID, dto.CreateTaskRequest{
		ProjectID: f.project.ProjectID,
		TeamID:    f.team.TeamID,
		Title:     "Not yours",
		Deadline:  deadline(),
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestTaskWorkflow_SubmitApprove(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Ship it", []string{f.member2.UserID})

	svc := NewTaskService()

	submitted, err := svc.SubmitTask(task.TaskID, f.member2.UserID, dto.SubmitWorkRequest{
		GitHubURL: "https://github.com/acme/billing/pull/42",
		Context:   "done, see PR",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, submitted.Status)
	assert.Equal(t, f.member2.UserID, submitted.SubmittedBy)

	approved, err := svc.ApproveTask(task.TaskID, f.pm.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, approved.Status)
}

func TestTaskWorkflow_InvalidTransitionsLeaveStatusUnchanged(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Strict edges", []string{f.member2.UserID})

	svc := NewTaskService()

	// Approving a pending task is not an edge
	_, err := svc.ApproveTask(task.TaskID, f.pm.UserID)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), string(models.StatusPending))

	current, err := svc.GetTask(task.TaskID, f.pm.UserID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, current.Status)

	// Neither is reassigning one
	_, err = svc.ReassignTask(task.TaskID, f.pm.UserID, dto.ReassignWorkRequest{Feedback: "redo"})
	require.ErrorIs(t, err, ErrInvalid)

	// Submitting twice is not allowed either
	_, err = svc.SubmitTask(task.TaskID, f.member2.UserID, dto.SubmitWorkRequest{GitHubURL: "https://github.com/x/y/pull/1"})
	require.NoError(t, err)
	_, err = svc.SubmitTask(task.TaskID, f.member2.UserID, dto.SubmitWorkRequest{GitHubURL: "https://github.com/x/y/pull/2"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), string(models.StatusInProgress))
}

func TestTaskWorkflow_ReassignClearsSubmissionAndAllowsResubmit(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Back and forth", []string{f.member2.UserID})

	svc := NewTaskService()

	_, err := svc.SubmitTask(task.TaskID, f.member2.UserID, dto.SubmitWorkRequest{
		GitHubURL: "https://github.com/acme/billing/pull/7",
		Context:   "first try",
	})
	require.NoError(t, err)

	reassigned, err := svc.ReassignTask(task.TaskID, f.leader.UserID, dto.ReassignWorkRequest{Feedback: "tests are missing"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusReAssigned, reassigned.Status)
	assert.Empty(t, reassigned.GitHubURL)
	assert.Empty(t, reassigned.SubmittedBy)
	assert.Equal(t, "tests are missing", reassigned.Context)

	resubmitted, err := svc.SubmitTask(task.TaskID, f.member2.UserID, dto.SubmitWorkRequest{
		GitHubURL: "https://github.com/acme/billing/pull/8",
		Context:   "with tests",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, resubmitted.Status)
}

func TestSubmitTask_AssigneesOnly(t *testing.T) {
	setupTestDB(t)
	f := buildFixture(t)
	task := f.createTask(t, "Exclusive", []string{f.member2.UserID})

	_, err := NewTaskService().SubmitTask(task.TaskID, f.member3.UserID, dto.SubmitWorkRequest{
		GitHubURL: "https://github.com/acme/billing/pull/9",
	})
	require.ErrorIs(t, err, ErrForbidden)
}
