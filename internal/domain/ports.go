package domain

import (
	"context"
	"io"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized reports whether the store exists.
	IsInitialized() bool
}

// TaskRepository manages task persistence. Records are whole-task upserts:
// callers load, mutate the full in-memory struct, then save. Identifier
// allocation is not the repository's concern (see NextID).
type TaskRepository interface {
	// Get retrieves a task by ID. Returns ErrTaskNotFound if absent.
	Get(id int) (*Task, error)

	// List retrieves every stored task. Order carries no meaning; callers
	// that need ordering must sort.
	List() ([]*Task, error)

	// Save creates or updates a task, overwriting any prior record whole.
	Save(task *Task) error

	// Delete removes a task by ID. Returns ErrTaskNotFound if absent.
	// References to the ID held by other tasks are left untouched.
	Delete(id int) error
}

// GeneratedFields is the raw output of the generation collaborator. The
// priority is an unvalidated string and must pass ParsePriority before a
// Task is built from it.
type GeneratedFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

// Generator synthesizes task fields from natural-language input.
type Generator interface {
	// Generate produces fields for a single task from a prompt.
	Generate(ctx context.Context, prompt string) (*GeneratedFields, error)

	// Decompose produces fields for count subtasks of the given task.
	Decompose(ctx context.Context, task *Task, count int) ([]GeneratedFields, error)
}

// ExecCommand describes an external command to run.
type ExecCommand struct {
	Program string   // Executable name or path
	Dir     string   // Working directory (empty = inherit)
	Args    []string // Arguments
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(cmd *ExecCommand) ([]byte, error)

	// ExecuteWithContext runs a command with context and custom
	// stdout/stderr writers.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error

	// ExecuteInteractive runs a command with stdin/stdout/stderr connected
	// to the terminal.
	ExecuteInteractive(cmd *ExecCommand) error
}

// Logger writes diagnostic log entries. taskID 0 means no associated task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// NopLogger is a Logger that discards all entries.
type NopLogger struct{}

func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}

// ConfigLoader loads configuration from files and the environment.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + repo + env).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Claude ClaudeConfig // [claude] settings
	Tasks  TasksConfig  // [tasks] settings
	Log    LogConfig    // [log] settings
}

// ClaudeConfig holds generation collaborator settings from [claude].
type ClaudeConfig struct {
	Command        string // Claude CLI executable (name or path)
	Model          string // Model passed via --model
	TimeoutSeconds int    // Per-call timeout; 0 = no timeout
}

// TasksConfig holds task defaults from [tasks].
type TasksConfig struct {
	DefaultPriority string // Priority used when none is given
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Claude: ClaudeConfig{
			Command: "claude",
			Model:   "sonnet",
		},
		Tasks: TasksConfig{
			DefaultPriority: string(PriorityMedium),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
