package db

import (
	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

func (repo *ProjectRepository) List() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) ListByCreator(userID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.Where("created_by = ?", userID).
		Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) FindByID(projectID uint) (models.Project, error) {
	var project models.Project
	if err := repo.database.First(&project, projectID).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

func (repo *ProjectRepository) UpdateByID(projectID uint, updates map[string]any) error {
	return repo.database.Model(&models.Project{}).Where("id = ?", projectID).Updates(updates).Error
}

// UpdateDetails replaces the editable fields wholesale. Struct-based updates
// keep the JSON serializer in play for the list columns; the explicit column
// list makes zero values stick.
func (repo *ProjectRepository) UpdateDetails(projectID uint, project models.Project) error {
	return repo.database.Model(&models.Project{}).Where("id = ?", projectID).
		Select("title", "description", "category", "required_skills", "deliverables",
			"start_date", "end_date", "team_size", "payment_model", "stipend_amount").
		Updates(project).Error
}

func (repo *ProjectRepository) Delete(projectID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMilestone{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, projectID).Error
	})
}
