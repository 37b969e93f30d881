package models

import "time"

// Profile extends a User with role-specific fields. It is created together
// with the User at registration; a row may still be missing for accounts that
// predate that change, which the auth middleware repairs on first request.
type Profile struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"uniqueIndex;not null"`
	Name   string

	// Student fields.
	College        string
	Major          string
	GraduationYear int
	Skills         []string         `gorm:"serializer:json"`
	Interests      []string         `gorm:"serializer:json"`
	Education      []EducationEntry `gorm:"serializer:json"`

	// Startup fields.
	CompanyName string
	Industry    string
	Stage       string

	Bio       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile returns a profile with the list fields initialized. The JSON
// serializer writes SQL NULL for nil slices, which the schema rejects, so
// every fresh profile must start from empty lists rather than zero values.
func NewProfile(userID uint, name string) Profile {
	return Profile{
		UserID:    userID,
		Name:      name,
		Skills:    []string{},
		Interests: []string{},
		Education: []EducationEntry{},
	}
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
}
