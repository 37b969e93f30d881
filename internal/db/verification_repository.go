package db

import (
	"errors"
	"time"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type VerificationRepository struct {
	database *gorm.DB
}

func NewVerificationRepository(database *gorm.DB) *VerificationRepository {
	return &VerificationRepository{database: database}
}

func (repo *VerificationRepository) CreateCode(code *models.VerificationCode) error {
	return repo.database.Create(code).Error
}

// FindActiveCode returns the newest unexpired, unconsumed code matching both
// the college and the literal code value.
func (repo *VerificationRepository) FindActiveCode(collegeID uint, code string, now time.Time) (models.VerificationCode, error) {
	var match models.VerificationCode
	err := repo.database.
		Where("college_id = ? AND code = ? AND expires_at > ?", collegeID, code, now).
		Where("single_use = ? OR redeemed_at IS NULL", false).
		Order("created_at DESC").
		First(&match).Error
	if err != nil {
		return models.VerificationCode{}, err
	}
	return match, nil
}

func (repo *VerificationRepository) MarkCodeRedeemed(codeID uint, now time.Time) error {
	return repo.database.Model(&models.VerificationCode{}).Where("id = ?", codeID).
		Update("redeemed_at", now).Error
}

func (repo *VerificationRepository) ListCodesByCollege(collegeID uint) ([]models.VerificationCode, error) {
	codes := make([]models.VerificationCode, 0)
	if err := repo.database.Where("college_id = ?", collegeID).
		Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (repo *VerificationRepository) FindRecordByUserID(userID uint) (models.VerificationRecord, error) {
	var record models.VerificationRecord
	if err := repo.database.Where("user_id = ?", userID).First(&record).Error; err != nil {
		return models.VerificationRecord{}, err
	}
	return record, nil
}

// UpsertRecord creates or overwrites the user's verification record; at most
// one row per user stays meaningful.
func (repo *VerificationRepository) UpsertRecord(record *models.VerificationRecord) error {
	var existing models.VerificationRecord
	err := repo.database.Where("user_id = ?", record.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.database.Create(record).Error
	}
	if err != nil {
		return err
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	return repo.database.Save(record).Error
}
