// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"slices"
	"time"

	"github.com/trustyhq/trusty/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks      map[int]*domain.Task
	SaveErrFor map[int]error // Per-ID save failures
	GetErr     error
	ListErr    error
	SaveErr    error
	DeleteErr  error
	Saves      []int // IDs passed to Save, in order
}

// NewMockTaskRepository creates a new MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks: make(map[int]*domain.Task),
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	// Return a copy so tests observe only saved state.
	clone := *task
	return &clone, nil
}

// List returns all tasks.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if err, ok := m.SaveErrFor[task.ID]; ok {
		return err
	}
	clone := *task
	m.Tasks[task.ID] = &clone
	m.Saves = append(m.Saves, task.ID)
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// MockGenerator is a test double for domain.Generator.
type MockGenerator struct {
	GenerateFields  *domain.GeneratedFields
	GenerateErr     error
	DecomposeFields []domain.GeneratedFields
	DecomposeErr    error
	Prompts         []string // Prompts passed to Generate
}

// Generate returns the configured fields or error.
func (m *MockGenerator) Generate(_ context.Context, prompt string) (*domain.GeneratedFields, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.GenerateFields, nil
}

// Decompose returns the configured fields or error.
func (m *MockGenerator) Decompose(_ context.Context, _ *domain.Task, count int) ([]domain.GeneratedFields, error) {
	if m.DecomposeErr != nil {
		return nil, m.DecomposeErr
	}
	if count < len(m.DecomposeFields) {
		return m.DecomposeFields[:count], nil
	}
	return m.DecomposeFields, nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Initialized bool
	InitErr     error
}

// Initialize records initialization.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// IsInitialized returns the configured value.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}
