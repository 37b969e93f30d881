package models

import "time"

const (
	TeamMemberRoleLead   = "lead"
	TeamMemberRoleMember = "member"
)

const (
	TeamMemberStatusActive  = "active"
	TeamMemberStatusPending = "pending"
)

type Team struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	LeadID      uint   `gorm:"not null;index"`
	Description string
	Skills      []string `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Members []TeamMember `gorm:"foreignKey:TeamID"`
}

type TeamMember struct {
	ID        uint   `gorm:"primaryKey"`
	TeamID    uint   `gorm:"not null;uniqueIndex:uidx_team_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:uidx_team_user"`
	Role      string `gorm:"not null;default:member"`
	Status    string `gorm:"not null;default:pending"`
	CreatedAt time.Time
}
