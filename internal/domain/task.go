package domain

// Task is a maintenance task scheduled for a building (tasks table).
type Task struct {
	ID          int64
	Title       string
	Description *string // nullable
	BuildingID  int64
	Building    *Building
}
