package models

import "time"

type Message struct {
	ID          uint   `gorm:"primaryKey"`
	SenderID    uint   `gorm:"not null;index:idx_message_pair"`
	RecipientID uint   `gorm:"not null;index:idx_message_pair"`
	Body        string `gorm:"not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time
}
