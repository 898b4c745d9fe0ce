package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/testutil"
)

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}

func TestAddTask_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{
		Title:        "Test task",
		Description:  "Test description",
		Priority:     "high",
		Tags:         []string{"backend"},
		Dependencies: []int{7, 7, 9},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, out.Task.ID)
	assert.False(t, out.Generated)

	task := repo.Tasks[1]
	require.NotNil(t, task)
	assert.Equal(t, "Test task", task.Title)
	assert.Equal(t, "Test description", task.Description)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, []string{"backend"}, task.Tags)
	// Duplicate dependency IDs collapse
	assert.Equal(t, []int{7, 9}, task.Dependencies)
	assert.Equal(t, testNow, task.CreatedAt)
}

func TestAddTask_Execute_DefaultPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityLow)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "Task"})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityLow, out.Task.Priority)
}

func TestAddTask_Execute_IDSkipsGaps(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = domain.NewTask(1, "a", "", domain.PriorityMedium, testNow)
	repo.Tasks[5] = domain.NewTask(5, "b", "", domain.PriorityMedium, testNow)
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "c"})

	require.NoError(t, err)
	assert.Equal(t, 6, out.Task.ID)
}

func TestAddTask_Execute_EmptyTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	_, err := uc.Execute(context.Background(), AddTaskInput{})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, repo.Saves)
}

func TestAddTask_Execute_InvalidPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "Task", Priority: "urgent"})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestAddTask_Execute_FromPrompt(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	gen := &testutil.MockGenerator{
		GenerateFields: &domain.GeneratedFields{
			Title:       "Generated task",
			Description: "Generated description",
			Priority:    "high",
			Tags:        []string{"feature"},
		},
	}
	uc := NewAddTask(repo, gen, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	out, err := uc.Execute(context.Background(), AddTaskInput{Prompt: "do the thing"})

	require.NoError(t, err)
	assert.True(t, out.Generated)
	assert.Equal(t, "Generated task", out.Task.Title)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, []string{"feature"}, out.Task.Tags)
	assert.Equal(t, []string{"do the thing"}, gen.Prompts)
}

func TestAddTask_Execute_PromptWithoutGenerator(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	_, err := uc.Execute(context.Background(), AddTaskInput{Prompt: "do the thing"})

	assert.ErrorIs(t, err, domain.ErrNoGenerator)
}

func TestAddTask_Execute_GeneratorError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	gen := &testutil.MockGenerator{GenerateErr: domain.ErrGeneration}
	uc := NewAddTask(repo, gen, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	_, err := uc.Execute(context.Background(), AddTaskInput{Prompt: "do the thing"})

	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.Empty(t, repo.Saves)
}

func TestAddTask_Execute_GeneratedInvalidPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	gen := &testutil.MockGenerator{
		GenerateFields: &domain.GeneratedFields{Title: "Task", Priority: "urgent"},
	}
	uc := NewAddTask(repo, gen, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	_, err := uc.Execute(context.Background(), AddTaskInput{Prompt: "do the thing"})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestAddTask_Execute_ListError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.ListErr = errors.New("disk gone")
	uc := NewAddTask(repo, nil, testClock(), domain.NopLogger{}, domain.PriorityMedium)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "Task"})

	assert.Error(t, err)
}
