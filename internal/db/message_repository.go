package db

import (
	"time"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	database *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{database: database}
}

func (repo *MessageRepository) Create(message *models.Message) error {
	return repo.database.Create(message).Error
}

func (repo *MessageRepository) ListConversation(userID uint, partnerID uint) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := repo.database.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ListPartners returns the distinct user ids this user has exchanged messages
// with, most recent conversation first.
func (repo *MessageRepository) ListPartners(userID uint) ([]uint, error) {
	type partnerRow struct {
		PartnerID uint `gorm:"column:partner_id"`
	}

	rows := make([]partnerRow, 0)
	err := repo.database.Raw(`
SELECT partner_id FROM (
  SELECT CASE WHEN sender_id = ? THEN recipient_id ELSE sender_id END AS partner_id,
         MAX(created_at) AS last_at
  FROM messages
  WHERE sender_id = ? OR recipient_id = ?
  GROUP BY partner_id
) ORDER BY last_at DESC`, userID, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	partners := make([]uint, 0, len(rows))
	for _, row := range rows {
		partners = append(partners, row.PartnerID)
	}
	return partners, nil
}

func (repo *MessageRepository) MarkConversationRead(userID uint, partnerID uint, now time.Time) error {
	return repo.database.Model(&models.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", userID, partnerID).
		Update("read_at", now).Error
}
