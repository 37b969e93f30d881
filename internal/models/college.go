package models

import "time"

type College struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Domain    string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

// VerificationCode is issued by a college admin and redeemed by students to
// prove affiliation. Codes stay valid until they expire; a code marked
// single-use is consumed by its first successful redemption.
type VerificationCode struct {
	ID         uint      `gorm:"primaryKey"`
	CollegeID  uint      `gorm:"not null;index"`
	Code       string    `gorm:"not null;index"`
	SingleUse  bool      `gorm:"not null;default:false"`
	RedeemedAt *time.Time
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedBy  uint      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (code VerificationCode) Expired(now time.Time) bool {
	return !code.ExpiresAt.After(now)
}

func (code VerificationCode) Consumed() bool {
	return code.SingleUse && code.RedeemedAt != nil
}

// VerificationRecord holds the current verification state of a user. At most
// one record per user is meaningful; redemptions upsert rather than append.
type VerificationRecord struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"uniqueIndex;not null"`
	CollegeID  uint `gorm:"not null"`
	IsVerified bool `gorm:"not null;default:false"`
	VerifiedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
