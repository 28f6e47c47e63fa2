package constants

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"

	// TaskLate is derived at read time from the due date. It is accepted as
	// input but never stored; writes carrying it are normalized to pending.
	TaskLate TaskStatus = "late"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)
