package db

import (
	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	database *gorm.DB
}

func NewApplicationRepository(database *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{database: database}
}

func (repo *ApplicationRepository) FindByID(applicationID uint) (models.Application, error) {
	var application models.Application
	if err := repo.database.First(&application, applicationID).Error; err != nil {
		return models.Application{}, err
	}
	return application, nil
}

func (repo *ApplicationRepository) ListByProject(projectID uint) ([]models.Application, error) {
	applications := make([]models.Application, 0)
	if err := repo.database.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *ApplicationRepository) ListBySubmitter(userID uint) ([]models.Application, error) {
	applications := make([]models.Application, 0)
	if err := repo.database.Where("submitted_by = ?", userID).
		Order("created_at DESC, id DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *ApplicationRepository) Create(application *models.Application) error {
	return repo.database.Create(application).Error
}

func (repo *ApplicationRepository) UpdateStatus(applicationID uint, status string) error {
	return repo.database.Model(&models.Application{}).Where("id = ?", applicationID).
		Update("status", status).Error
}
