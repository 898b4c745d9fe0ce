package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/testutil"
)

func TestAddSubtask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	parent := domain.NewTask(1, "Parent", "", domain.PriorityHigh, testNow)
	parent.Tags = []string{"backend"}
	repo.Tasks[1] = parent
	uc := NewAddSubtask(repo, nil, testClock(), domain.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), AddSubtaskInput{
		ParentID: 1,
		Title:    "Child",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Task.ID)
	assert.Equal(t, "Child", out.Task.Title)
	// Priority and tags inherit from the parent when omitted
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, []string{"backend"}, out.Task.Tags)

	// Parent now references the child
	assert.Equal(t, []int{2}, repo.Tasks[1].Subtasks)
	require.NotNil(t, repo.Tasks[2])
}

func TestAddSubtask_Execute_ExplicitFieldsWin(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	parent := domain.NewTask(1, "Parent", "", domain.PriorityHigh, testNow)
	parent.Tags = []string{"backend"}
	repo.Tasks[1] = parent
	uc := NewAddSubtask(repo, nil, testClock(), domain.NopLogger{})

	out, err := uc.Execute(context.Background(), AddSubtaskInput{
		ParentID: 1,
		Title:    "Child",
		Priority: "low",
		Tags:     []string{"docs"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityLow, out.Task.Priority)
	assert.Equal(t, []string{"docs"}, out.Task.Tags)
}

func TestAddSubtask_Execute_ParentNotFound(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddSubtask(repo, nil, testClock(), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), AddSubtaskInput{ParentID: 42, Title: "Child"})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAddSubtask_Execute_FromPrompt(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = domain.NewTask(1, "Build the API", "", domain.PriorityMedium, testNow)
	gen := &testutil.MockGenerator{
		GenerateFields: &domain.GeneratedFields{Title: "Define routes", Priority: "medium"},
	}
	uc := NewAddSubtask(repo, gen, testClock(), domain.NopLogger{})

	out, err := uc.Execute(context.Background(), AddSubtaskInput{ParentID: 1, Prompt: "start with routing"})

	require.NoError(t, err)
	assert.True(t, out.Generated)
	assert.Equal(t, "Define routes", out.Task.Title)
	// The parent's title is given to the generator as context
	require.Len(t, gen.Prompts, 1)
	assert.Contains(t, gen.Prompts[0], "Build the API")
	assert.Contains(t, gen.Prompts[0], "start with routing")
}

func TestAddSubtask_Execute_ParentSaveFailureLeavesOrphan(t *testing.T) {
	// The child save and the parent link are separate writes. A parent
	// save failure leaves the child in the store, unreferenced.
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = domain.NewTask(1, "Parent", "", domain.PriorityMedium, testNow)
	repo.SaveErrFor = map[int]error{1: errors.New("disk full")}
	uc := NewAddSubtask(repo, nil, testClock(), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), AddSubtaskInput{ParentID: 1, Title: "Child"})

	require.Error(t, err)
	assert.NotNil(t, repo.Tasks[2])
	assert.Empty(t, repo.Tasks[1].Subtasks)
}

func TestRemoveSubtask_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	parent := domain.NewTask(1, "Parent", "", domain.PriorityMedium, testNow)
	parent.Subtasks = []int{2, 3}
	repo.Tasks[1] = parent
	repo.Tasks[2] = domain.NewTask(2, "Child", "", domain.PriorityMedium, testNow)
	uc := NewRemoveSubtask(repo, testClock())

	out, err := uc.Execute(context.Background(), RemoveSubtaskInput{ParentID: 1, SubtaskID: 2})

	require.NoError(t, err)
	assert.True(t, out.Removed)
	assert.Equal(t, []int{3}, repo.Tasks[1].Subtasks)
	// The child record itself survives
	assert.NotNil(t, repo.Tasks[2])
}

func TestRemoveSubtask_Execute_NotLinked(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	parent := domain.NewTask(1, "Parent", "", domain.PriorityMedium, testNow)
	repo.Tasks[1] = parent
	uc := NewRemoveSubtask(repo, testClock())

	out, err := uc.Execute(context.Background(), RemoveSubtaskInput{ParentID: 1, SubtaskID: 9})

	require.NoError(t, err)
	assert.False(t, out.Removed)
	// Nothing was written back
	assert.Empty(t, repo.Saves)
}
