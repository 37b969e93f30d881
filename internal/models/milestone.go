package models

import "time"

const (
	MilestoneStatusNotStarted = "not_started"
	MilestoneStatusInProgress = "in_progress"
	MilestoneStatusCompleted  = "completed"
)

// Canonical task statuses. Earlier iterations of the product drifted between
// two enumerations at different call sites; this set is the single one the
// whole service accepts.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
)

func IsKnownMilestoneStatus(status string) bool {
	switch status {
	case MilestoneStatusNotStarted, MilestoneStatusInProgress, MilestoneStatusCompleted:
		return true
	}
	return false
}

func IsKnownTaskStatus(status string) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

type ProjectMilestone struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	DueDate     *time.Time
	Status      string `gorm:"not null;default:not_started"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectTask struct {
	ID          uint  `gorm:"primaryKey"`
	ProjectID   uint  `gorm:"not null;index"`
	MilestoneID *uint `gorm:"index"`
	Title       string
	Description string
	AssigneeID  *uint
	Status      string `gorm:"not null;default:todo"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
