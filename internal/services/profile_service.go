package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUserID(userID uint) (models.Profile, error)
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// ProfileUpdate carries a partial profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name           *string         `json:"name"`
	College        *string         `json:"college"`
	Major          *string         `json:"major"`
	GraduationYear *int            `json:"graduation_year"`
	Skills         []string        `json:"skills"`
	Interests      []string        `json:"interests"`
	Education      json.RawMessage `json:"education"`
	CompanyName    *string         `json:"company_name"`
	Industry       *string         `json:"industry"`
	Stage          *string         `json:"stage"`
	Bio            *string         `json:"bio"`
}

// GetUserProfile returns (nil, nil) when no profile row exists; "profile not
// created yet" is a valid state, not an error.
func (service *ProfileService) GetUserProfile(userID uint) (*models.Profile, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// EnsureProfile creates a minimal profile row for accounts that predate
// transactional sign-up. Repair action, not part of any access decision.
func (service *ProfileService) EnsureProfile(userID uint) (*models.Profile, error) {
	profile, err := service.GetUserProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	created := models.NewProfile(userID, "")
	if err := service.profiles.Create(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProfile merges the provided fields into the stored profile. List
// fields are normalized; education parse failures default to an empty list
// rather than failing the whole update.
func (service *ProfileService) UpdateProfile(userID uint, update ProfileUpdate) (models.Profile, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.Profile{}, err
	}

	if update.Name != nil {
		profile.Name = strings.TrimSpace(*update.Name)
	}
	if update.College != nil {
		profile.College = strings.TrimSpace(*update.College)
	}
	if update.Major != nil {
		profile.Major = strings.TrimSpace(*update.Major)
	}
	if update.GraduationYear != nil {
		profile.GraduationYear = *update.GraduationYear
	}
	if update.Skills != nil {
		profile.Skills = NormalizeStringList(update.Skills)
	}
	if update.Interests != nil {
		profile.Interests = NormalizeStringList(update.Interests)
	}
	if update.Education != nil {
		profile.Education = ParseEducation(update.Education)
	}
	if update.CompanyName != nil {
		profile.CompanyName = strings.TrimSpace(*update.CompanyName)
	}
	if update.Industry != nil {
		profile.Industry = strings.TrimSpace(*update.Industry)
	}
	if update.Stage != nil {
		profile.Stage = strings.TrimSpace(*update.Stage)
	}
	if update.Bio != nil {
		profile.Bio = strings.TrimSpace(*update.Bio)
	}

	if err := service.profiles.Save(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// NormalizeStringList trims entries, drops blanks, and de-duplicates while
// keeping first-seen order.
func NormalizeStringList(values []string) []string {
	normalized := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// ParseEducation accepts either a JSON list of entries or that same list
// serialized once more as a JSON string. Anything else yields an empty list;
// malformed history must never block a profile update.
func ParseEducation(raw json.RawMessage) []models.EducationEntry {
	entries := make([]models.EducationEntry, 0)
	if len(raw) == 0 {
		return entries
	}

	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries
	}

	var serialized string
	if err := json.Unmarshal(raw, &serialized); err == nil {
		if err := json.Unmarshal([]byte(serialized), &entries); err == nil {
			return entries
		}
	}

	log.Printf("profile: unparseable education payload, defaulting to empty list")
	return []models.EducationEntry{}
}
