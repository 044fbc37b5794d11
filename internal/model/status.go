package model

// TaskStatus represents the status of a list or fetch task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but its worker has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRunning means the worker is talking to the provider or writing the file
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// TaskKind identifies which worker a task runs on.
type TaskKind string

const (
	TaskKindList  TaskKind = "list"
	TaskKindFetch TaskKind = "fetch"
)
