package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkravets/launchpad/internal/models"
	"github.com/mkravets/launchpad/internal/security"
	"gorm.io/gorm"
)

var (
	ErrVerificationCodeInvalid = errors.New("invalid verification code")
	ErrCollegeNotFound         = errors.New("college not found")
)

const (
	verificationCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	verificationCodeGroupLen = 4
	DefaultCodeTTL           = 14 * 24 * time.Hour
)

type VerificationCodeRepository interface {
	CreateCode(code *models.VerificationCode) error
	FindActiveCode(collegeID uint, code string, now time.Time) (models.VerificationCode, error)
	MarkCodeRedeemed(codeID uint, now time.Time) error
	ListCodesByCollege(collegeID uint) ([]models.VerificationCode, error)
	FindRecordByUserID(userID uint) (models.VerificationRecord, error)
	UpsertRecord(record *models.VerificationRecord) error
}

type CollegeLookupRepository interface {
	FindByID(collegeID uint) (models.College, error)
}

type VerificationService struct {
	verifications VerificationCodeRepository
	colleges      CollegeLookupRepository
	now           func() time.Time
}

func NewVerificationService(verifications VerificationCodeRepository, colleges CollegeLookupRepository) *VerificationService {
	return &VerificationService{
		verifications: verifications,
		colleges:      colleges,
		now:           time.Now,
	}
}

// IssueCode mints a short human-typable code for a college. Codes validate
// repeatedly until expiry unless singleUse is set; a shared classroom code
// and a one-shot invite are both legitimate uses.
func (service *VerificationService) IssueCode(collegeID uint, createdBy uint, ttl time.Duration, singleUse bool) (models.VerificationCode, error) {
	if _, err := service.colleges.FindByID(collegeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.VerificationCode{}, ErrCollegeNotFound
		}
		return models.VerificationCode{}, err
	}
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}

	value, err := generateVerificationCode()
	if err != nil {
		return models.VerificationCode{}, err
	}

	code := models.VerificationCode{
		CollegeID: collegeID,
		Code:      value,
		SingleUse: singleUse,
		ExpiresAt: service.now().Add(ttl),
		CreatedBy: createdBy,
	}
	if err := service.verifications.CreateCode(&code); err != nil {
		return models.VerificationCode{}, err
	}
	return code, nil
}

// VerifyCollege redeems a code for a user. A mismatch, a wrong college, or an
// expired code all return ErrVerificationCodeInvalid and leave any existing
// verification record untouched; storage failures surface as themselves.
func (service *VerificationService) VerifyCollege(userID uint, collegeID uint, codeRaw string) (models.VerificationRecord, error) {
	code := strings.ToUpper(strings.TrimSpace(codeRaw))
	if code == "" {
		return models.VerificationRecord{}, ErrVerificationCodeInvalid
	}

	now := service.now()
	match, err := service.verifications.FindActiveCode(collegeID, code, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.VerificationRecord{}, ErrVerificationCodeInvalid
	}
	if err != nil {
		return models.VerificationRecord{}, err
	}

	verifiedAt := now
	record := models.VerificationRecord{
		UserID:     userID,
		CollegeID:  collegeID,
		IsVerified: true,
		VerifiedAt: &verifiedAt,
	}
	if err := service.verifications.UpsertRecord(&record); err != nil {
		return models.VerificationRecord{}, err
	}

	if match.SingleUse {
		if err := service.verifications.MarkCodeRedeemed(match.ID, now); err != nil {
			return models.VerificationRecord{}, err
		}
	}
	return record, nil
}

// IsVerified reports the user's current verification state; no record means
// not verified.
func (service *VerificationService) IsVerified(userID uint) (bool, error) {
	record, err := service.verifications.FindRecordByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.IsVerified, nil
}

func (service *VerificationService) RecordForUser(userID uint) (*models.VerificationRecord, error) {
	record, err := service.verifications.FindRecordByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (service *VerificationService) ListCodes(collegeID uint) ([]models.VerificationCode, error) {
	return service.verifications.ListCodesByCollege(collegeID)
}

func generateVerificationCode() (string, error) {
	groups := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		group, err := security.RandomString(verificationCodeGroupLen, verificationCodeAlphabet)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return fmt.Sprintf("LNCH-%s-%s", groups[0], groups[1]), nil
}
