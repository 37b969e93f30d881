package models

import "time"

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

func IsKnownApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a Team to a Project. The store applies status updates
// as requested; restricting who may update and which transitions make sense
// is the route guard's job.
type Application struct {
	ID          uint `gorm:"primaryKey"`
	ProjectID   uint `gorm:"not null;index"`
	TeamID      uint `gorm:"not null;index"`
	SubmittedBy uint `gorm:"not null;index"`
	CoverLetter string
	Status      string `gorm:"not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
