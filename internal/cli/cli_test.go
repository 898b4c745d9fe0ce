package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustyhq/trusty/internal/app"
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/testutil"
)

func newTestContainer(repo *testutil.MockTaskRepository, gen *testutil.MockGenerator) *app.Container {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var generator domain.Generator
	if gen != nil {
		generator = gen
	}
	return app.NewWithDeps(app.Paths{}, repo, &testutil.MockStoreInitializer{}, clock, generator, nil)
}

// execute runs the root command with the given args and returns its output.
func execute(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCLI_Init(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository(), nil)

	out, err := execute(t, c, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized trusty")

	out, err = execute(t, c, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already initialized")
}

func TestCLI_AddAndList(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := newTestContainer(repo, nil)

	out, err := execute(t, c, "add", "--title", "First task", "--priority", "high", "--tag", "backend")
	require.NoError(t, err)
	assert.Contains(t, out, "Created task #1: First task")

	out, err = execute(t, c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "First task")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "backend")
}

func TestCLI_List_Empty(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository(), nil)

	out, err := execute(t, c, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")
}

func TestCLI_Add_RequiresTitleWithoutPrompt(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository(), nil)

	_, err := execute(t, c, "add")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestCLI_Show(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := newTestContainer(repo, nil)

	_, err := execute(t, c, "add", "--title", "Parent task", "--description", "The details")
	require.NoError(t, err)
	_, err = execute(t, c, "add-subtask", "--task", "1", "--title", "Child task")
	require.NoError(t, err)
	_, err = execute(t, c, "set-status", "--id", "2", "--status", "in-progress")
	require.NoError(t, err)

	out, err := execute(t, c, "show", "1", "--with-subtasks")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1")
	assert.Contains(t, out, "Parent task")
	assert.Contains(t, out, "The details")
	// Stored status is pending but the subtask makes it effectively in-progress
	assert.Contains(t, out, "effective: in-progress")
	assert.Contains(t, out, "Child task")
}

func TestCLI_SetStatus_Invalid(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := newTestContainer(repo, nil)

	_, err := execute(t, c, "add", "--title", "Task")
	require.NoError(t, err)

	_, err = execute(t, c, "set-status", "--id", "1", "--status", "finished")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCLI_Complete(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := newTestContainer(repo, nil)

	_, err := execute(t, c, "add", "--title", "Task")
	require.NoError(t, err)

	out, err := execute(t, c, "complete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed task #1")
	assert.Equal(t, domain.StatusDone, repo.Tasks[1].Status)
}

func TestCLI_Delete_NotFound(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository(), nil)

	_, err := execute(t, c, "delete", "42")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCLI_Decompose_Preview(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	gen := &testutil.MockGenerator{
		DecomposeFields: []domain.GeneratedFields{
			{Title: "Step one", Priority: "high"},
			{Title: "Step two", Priority: "medium"},
		},
	}
	c := newTestContainer(repo, gen)

	_, err := execute(t, c, "add", "--title", "Big task")
	require.NoError(t, err)

	out, err := execute(t, c, "decompose", "1", "--count", "2", "--preview")
	require.NoError(t, err)
	assert.Contains(t, out, "Step one")
	assert.Contains(t, out, "Step two")
	// Preview never writes
	assert.Empty(t, repo.Tasks[1].Subtasks)
}

func TestCLI_Nuke_AbortsWithoutConfirmation(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := newTestContainer(repo, nil)

	_, err := execute(t, c, "add", "--title", "Task")
	require.NoError(t, err)

	// Stdin is empty, so the confirmation fails and nothing is deleted
	out, err := execute(t, c, "nuke")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted")
	assert.Len(t, repo.Tasks, 1)
}

func TestCLI_Nuke_Force(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	c := newTestContainer(repo, nil)

	_, err := execute(t, c, "add", "--title", "Task")
	require.NoError(t, err)

	out, err := execute(t, c, "nuke", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 tasks")
	assert.Empty(t, repo.Tasks)
}
