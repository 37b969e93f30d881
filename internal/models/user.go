package models

import "time"

const (
	RoleStudent       = "student"
	RoleStartup       = "startup"
	RoleCollegeAdmin  = "college_admin"
	RolePlatformAdmin = "platform_admin"
)

// SignupRoles are the roles a user may pick at registration. Admin roles are
// assigned out of band.
func SignupRoles() []string {
	return []string{RoleStudent, RoleStartup}
}

func IsKnownRole(role string) bool {
	switch role {
	case RoleStudent, RoleStartup, RoleCollegeAdmin, RolePlatformAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:student"`
	Provider     string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`
}
