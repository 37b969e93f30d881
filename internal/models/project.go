package models

import "time"

const (
	ProjectStatusOpen       = "open"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusCancelled  = "cancelled"
)

const (
	PaymentUnpaid  = "unpaid"
	PaymentStipend = "stipend"
	PaymentHourly  = "hourly"
	PaymentFixed   = "fixed"
)

func IsKnownProjectStatus(status string) bool {
	switch status {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

func IsKnownPaymentModel(model string) bool {
	switch model {
	case PaymentUnpaid, PaymentStipend, PaymentHourly, PaymentFixed:
		return true
	}
	return false
}

func ProjectCategories() []string {
	return []string{
		"web_development",
		"mobile_development",
		"data_science",
		"design",
		"marketing",
		"research",
		"other",
	}
}

type Project struct {
	ID             uint   `gorm:"primaryKey"`
	CreatedBy      uint   `gorm:"not null;index"`
	Title          string `gorm:"not null"`
	Description    string
	Category       string   `gorm:"not null;default:other"`
	RequiredSkills []string `gorm:"serializer:json"`
	Deliverables   []string `gorm:"serializer:json"`
	StartDate      *time.Time
	EndDate        *time.Time
	TeamSize       int    `gorm:"not null;default:1"`
	PaymentModel   string `gorm:"not null;default:unpaid"`
	StipendAmount  int    `gorm:"not null;default:0"`
	Status         string `gorm:"not null;default:open"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
