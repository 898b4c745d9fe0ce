package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/testutil"
)

func TestSetStatus_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = domain.NewTask(1, "task", "", domain.PriorityMedium, testNow)
	uc := NewSetStatus(repo, testClock(), domain.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), SetStatusInput{TaskID: 1, Status: domain.StatusInProgress})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, out.Status)
	assert.Equal(t, 1, out.Updated)
	assert.Equal(t, domain.StatusInProgress, repo.Tasks[1].Status)
}

func TestSetStatus_Execute_DoneRecordsCompletedAt(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = domain.NewTask(1, "task", "", domain.PriorityMedium, testNow.Add(-time.Hour))
	uc := NewSetStatus(repo, testClock(), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), SetStatusInput{TaskID: 1, Status: domain.StatusDone})

	require.NoError(t, err)
	require.NotNil(t, repo.Tasks[1].CompletedAt)
	assert.Equal(t, testNow, *repo.Tasks[1].CompletedAt)
}

func TestSetStatus_Execute_InvalidStatus(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewSetStatus(repo, testClock(), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), SetStatusInput{TaskID: 1, Status: "finished"})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestSetStatus_Execute_TaskNotFound(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewSetStatus(repo, testClock(), domain.NopLogger{})

	_, err := uc.Execute(context.Background(), SetStatusInput{TaskID: 42, Status: domain.StatusDone})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestSetStatus_Execute_Cascade(t *testing.T) {
	// Setup: 1 -> {2, 3}, 2 -> {4}
	repo := testutil.NewMockTaskRepository()
	root := domain.NewTask(1, "root", "", domain.PriorityMedium, testNow)
	root.Subtasks = []int{2, 3}
	mid := domain.NewTask(2, "mid", "", domain.PriorityMedium, testNow)
	mid.Subtasks = []int{4}
	repo.Tasks[1] = root
	repo.Tasks[2] = mid
	repo.Tasks[3] = domain.NewTask(3, "leaf", "", domain.PriorityMedium, testNow)
	repo.Tasks[4] = domain.NewTask(4, "deep leaf", "", domain.PriorityMedium, testNow)
	uc := NewSetStatus(repo, testClock(), domain.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), SetStatusInput{
		TaskID:  1,
		Status:  domain.StatusCancelled,
		Cascade: true,
	})

	// Assert: the whole tree is updated
	require.NoError(t, err)
	assert.Equal(t, 4, out.Updated)
	for id := 1; id <= 4; id++ {
		assert.Equal(t, domain.StatusCancelled, repo.Tasks[id].Status, "task %d", id)
	}
}

func TestSetStatus_Execute_CascadeSkipsDangling(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	root := domain.NewTask(1, "root", "", domain.PriorityMedium, testNow)
	root.Subtasks = []int{2, 99}
	repo.Tasks[1] = root
	repo.Tasks[2] = domain.NewTask(2, "leaf", "", domain.PriorityMedium, testNow)
	uc := NewSetStatus(repo, testClock(), domain.NopLogger{})

	out, err := uc.Execute(context.Background(), SetStatusInput{
		TaskID:  1,
		Status:  domain.StatusDone,
		Cascade: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Updated)
	assert.Equal(t, domain.StatusDone, repo.Tasks[2].Status)
}

func TestCompleteTask_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	root := domain.NewTask(1, "root", "", domain.PriorityMedium, testNow)
	root.Subtasks = []int{2}
	repo.Tasks[1] = root
	repo.Tasks[2] = domain.NewTask(2, "leaf", "", domain.PriorityMedium, testNow)
	uc := NewCompleteTask(NewSetStatus(repo, testClock(), domain.NopLogger{}))

	// Without --all only the task itself changes
	out, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Updated)
	assert.Equal(t, domain.StatusPending, repo.Tasks[2].Status)

	// With --all the subtasks follow
	out, err = uc.Execute(context.Background(), CompleteTaskInput{TaskID: 1, All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Updated)
	assert.Equal(t, domain.StatusDone, repo.Tasks[2].Status)
}
