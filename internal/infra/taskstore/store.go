// Package taskstore provides a file-based implementation of TaskRepository.
// Each task is stored as one JSON document under .trusty/tasks/<id>.json.
package taskstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/trustyhq/trusty/internal/domain"
)

// Store implements domain.TaskRepository using one file per task.
type Store struct {
	dir string
}

// New creates a new Store rooted at the given tasks directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Get retrieves a task by ID.
func (s *Store) Get(id int) (*domain.Task, error) {
	content, err := os.ReadFile(s.taskPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var task domain.Task
	if err := json.Unmarshal(content, &task); err != nil {
		return nil, fmt.Errorf("parse task file %d.json: %w", id, err)
	}
	return &task, nil
}

// List retrieves every stored task, sorted by ID for consistent output.
// The sort is a convenience only; callers must not rely on store order.
func (s *Store) List() ([]*domain.Task, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read tasks directory: %w", err)
	}

	var tasks []*domain.Task
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue // stray file, not a task record
		}
		task, err := s.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				continue // deleted between ReadDir and read
			}
			return nil, err
		}
		tasks = append(tasks, task)
	}

	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})

	return tasks, nil
}

// Save creates or updates a task, overwriting any prior record whole.
func (s *Store) Save(task *domain.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create tasks directory: %w", err)
	}

	content, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	path := s.taskPath(task.ID)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Delete removes a task record. References to the ID held by other tasks
// are left untouched; dangling references are tolerated at read time.
func (s *Store) Delete(id int) error {
	if err := os.Remove(s.taskPath(id)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrTaskNotFound
		}
		return fmt.Errorf("delete task file: %w", err)
	}
	return nil
}

// IsInitialized checks if the tasks directory exists.
func (s *Store) IsInitialized() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// Initialize creates the tasks directory if it doesn't exist.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create tasks directory: %w", err)
	}
	return nil
}

func (s *Store) taskPath(id int) string {
	return filepath.Join(s.dir, strconv.Itoa(id)+".json")
}

// Ensure Store implements the repository interfaces.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
