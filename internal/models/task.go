package models

// TaskStatus represents the status of an async recommendation task
type TaskStatus string

const (
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusError      TaskStatus = "error"
)

// TaskRecord is the orchestration record held in the result store for the
// lifetime of a task. It transitions exactly once from processing to a
// terminal status and expires after the store's retention window.
type TaskRecord struct {
	Status TaskStatus `json:"status"`
	Result string     `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// Terminal reports whether the record has reached a terminal status.
func (r TaskRecord) Terminal() bool {
	return r.Status == TaskStatusCompleted || r.Status == TaskStatusError
}
