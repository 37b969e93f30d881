package db

import (
	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type CollegeRepository struct {
	database *gorm.DB
}

func NewCollegeRepository(database *gorm.DB) *CollegeRepository {
	return &CollegeRepository{database: database}
}

func (repo *CollegeRepository) List() ([]models.College, error) {
	colleges := make([]models.College, 0)
	if err := repo.database.Order("name ASC").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

func (repo *CollegeRepository) FindByID(collegeID uint) (models.College, error) {
	var college models.College
	if err := repo.database.First(&college, collegeID).Error; err != nil {
		return models.College{}, err
	}
	return college, nil
}

func (repo *CollegeRepository) Create(college *models.College) error {
	return repo.database.Create(college).Error
}
