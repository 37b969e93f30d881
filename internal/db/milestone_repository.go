package db

import (
	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

type MilestoneRepository struct {
	database *gorm.DB
}

func NewMilestoneRepository(database *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{database: database}
}

func (repo *MilestoneRepository) ListByProject(projectID uint) ([]models.ProjectMilestone, error) {
	milestones := make([]models.ProjectMilestone, 0)
	if err := repo.database.Where("project_id = ?", projectID).
		Order("due_date ASC, id ASC").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (repo *MilestoneRepository) FindByID(milestoneID uint) (models.ProjectMilestone, error) {
	var milestone models.ProjectMilestone
	if err := repo.database.First(&milestone, milestoneID).Error; err != nil {
		return models.ProjectMilestone{}, err
	}
	return milestone, nil
}

func (repo *MilestoneRepository) Create(milestone *models.ProjectMilestone) error {
	return repo.database.Create(milestone).Error
}

func (repo *MilestoneRepository) UpdateByID(milestoneID uint, updates map[string]any) error {
	return repo.database.Model(&models.ProjectMilestone{}).Where("id = ?", milestoneID).
		Updates(updates).Error
}

func (repo *MilestoneRepository) Delete(milestoneID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProjectTask{}).Where("milestone_id = ?", milestoneID).
			Update("milestone_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProjectMilestone{}, milestoneID).Error
	})
}

func (repo *MilestoneRepository) ListTasksByProject(projectID uint) ([]models.ProjectTask, error) {
	tasks := make([]models.ProjectTask, 0)
	if err := repo.database.Where("project_id = ?", projectID).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *MilestoneRepository) FindTaskByID(taskID uint) (models.ProjectTask, error) {
	var task models.ProjectTask
	if err := repo.database.First(&task, taskID).Error; err != nil {
		return models.ProjectTask{}, err
	}
	return task, nil
}

func (repo *MilestoneRepository) CreateTask(task *models.ProjectTask) error {
	return repo.database.Create(task).Error
}

func (repo *MilestoneRepository) UpdateTaskByID(taskID uint, updates map[string]any) error {
	return repo.database.Model(&models.ProjectTask{}).Where("id = ?", taskID).
		Updates(updates).Error
}

func (repo *MilestoneRepository) DeleteTask(taskID uint) error {
	return repo.database.Delete(&models.ProjectTask{}, taskID).Error
}
