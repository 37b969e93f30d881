package db

import (
	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	database *gorm.DB
}

func NewTeamRepository(database *gorm.DB) *TeamRepository {
	return &TeamRepository{database: database}
}

func (repo *TeamRepository) List() ([]models.Team, error) {
	teams := make([]models.Team, 0)
	if err := repo.database.Preload("Members").
		Order("created_at DESC, id DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (repo *TeamRepository) ListByMember(userID uint) ([]models.Team, error) {
	teams := make([]models.Team, 0)
	err := repo.database.Preload("Members").
		Where("id IN (?)", repo.database.Model(&models.TeamMember{}).
			Select("team_id").Where("user_id = ?", userID)).
		Order("created_at DESC, id DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (repo *TeamRepository) FindByID(teamID uint) (models.Team, error) {
	var team models.Team
	if err := repo.database.Preload("Members").First(&team, teamID).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// CreateWithLead persists the team and its lead membership together so a team
// is never observable without a lead.
func (repo *TeamRepository) CreateWithLead(team *models.Team) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		lead := models.TeamMember{
			TeamID: team.ID,
			UserID: team.LeadID,
			Role:   models.TeamMemberRoleLead,
			Status: models.TeamMemberStatusActive,
		}
		if err := tx.Create(&lead).Error; err != nil {
			return err
		}
		team.Members = append(team.Members, lead)
		return nil
	})
}

// UpdateDetails replaces the editable fields wholesale; struct-based updates
// keep the JSON serializer in play for the skills column.
func (repo *TeamRepository) UpdateDetails(teamID uint, team models.Team) error {
	return repo.database.Model(&models.Team{}).Where("id = ?", teamID).
		Select("name", "description", "skills").
		Updates(team).Error
}

func (repo *TeamRepository) Delete(teamID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, teamID).Error
	})
}

func (repo *TeamRepository) AddMember(member *models.TeamMember) error {
	return repo.database.Create(member).Error
}

func (repo *TeamRepository) FindMember(teamID uint, userID uint) (models.TeamMember, error) {
	var member models.TeamMember
	if err := repo.database.Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error; err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

func (repo *TeamRepository) UpdateMemberStatus(memberID uint, status string) error {
	return repo.database.Model(&models.TeamMember{}).Where("id = ?", memberID).
		Update("status", status).Error
}

func (repo *TeamRepository) RemoveMember(memberID uint) error {
	return repo.database.Delete(&models.TeamMember{}, memberID).Error
}
