package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidMilestoneTitle    = errors.New("invalid milestone title")
	ErrInvalidMilestoneStatus   = errors.New("invalid milestone status")
	ErrMilestoneNotFound        = errors.New("milestone not found")
	ErrInvalidTaskTitle         = errors.New("invalid task title")
	ErrInvalidTaskStatus        = errors.New("invalid task status")
	ErrTaskNotFound             = errors.New("task not found")
	ErrMilestoneProjectMismatch = errors.New("milestone belongs to another project")
)

type MilestoneRepositoryPort interface {
	ListByProject(projectID uint) ([]models.ProjectMilestone, error)
	FindByID(milestoneID uint) (models.ProjectMilestone, error)
	Create(milestone *models.ProjectMilestone) error
	UpdateByID(milestoneID uint, updates map[string]any) error
	Delete(milestoneID uint) error
	ListTasksByProject(projectID uint) ([]models.ProjectTask, error)
	FindTaskByID(taskID uint) (models.ProjectTask, error)
	CreateTask(task *models.ProjectTask) error
	UpdateTaskByID(taskID uint, updates map[string]any) error
	DeleteTask(taskID uint) error
}

type MilestoneService struct {
	milestones MilestoneRepositoryPort
}

func NewMilestoneService(milestones MilestoneRepositoryPort) *MilestoneService {
	return &MilestoneService{milestones: milestones}
}

func (service *MilestoneService) ListMilestones(projectID uint) ([]models.ProjectMilestone, error) {
	return service.milestones.ListByProject(projectID)
}

func (service *MilestoneService) CreateMilestone(projectID uint, title, description string, dueDate *time.Time) (models.ProjectMilestone, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.ProjectMilestone{}, ErrInvalidMilestoneTitle
	}

	milestone := models.ProjectMilestone{
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(description),
		DueDate:     dueDate,
		Status:      models.MilestoneStatusNotStarted,
	}
	if err := service.milestones.Create(&milestone); err != nil {
		return models.ProjectMilestone{}, err
	}
	return milestone, nil
}

func (service *MilestoneService) UpdateMilestoneStatus(milestoneID uint, status string) (models.ProjectMilestone, error) {
	if !models.IsKnownMilestoneStatus(status) {
		return models.ProjectMilestone{}, ErrInvalidMilestoneStatus
	}
	if _, err := service.milestones.FindByID(milestoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectMilestone{}, ErrMilestoneNotFound
		}
		return models.ProjectMilestone{}, err
	}
	if err := service.milestones.UpdateByID(milestoneID, map[string]any{"status": status}); err != nil {
		return models.ProjectMilestone{}, err
	}
	return service.milestones.FindByID(milestoneID)
}

func (service *MilestoneService) DeleteMilestone(milestoneID uint) error {
	if _, err := service.milestones.FindByID(milestoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMilestoneNotFound
		}
		return err
	}
	return service.milestones.Delete(milestoneID)
}

func (service *MilestoneService) ListTasks(projectID uint) ([]models.ProjectTask, error) {
	return service.milestones.ListTasksByProject(projectID)
}

// CreateTask accepts an optional milestone, which must belong to the same
// project as the task.
func (service *MilestoneService) CreateTask(projectID uint, milestoneID *uint, title, description string, assigneeID *uint) (models.ProjectTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.ProjectTask{}, ErrInvalidTaskTitle
	}

	if milestoneID != nil {
		milestone, err := service.milestones.FindByID(*milestoneID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectTask{}, ErrMilestoneNotFound
		}
		if err != nil {
			return models.ProjectTask{}, err
		}
		if milestone.ProjectID != projectID {
			return models.ProjectTask{}, ErrMilestoneProjectMismatch
		}
	}

	task := models.ProjectTask{
		ProjectID:   projectID,
		MilestoneID: milestoneID,
		Title:       title,
		Description: strings.TrimSpace(description),
		AssigneeID:  assigneeID,
		Status:      models.TaskStatusTodo,
	}
	if err := service.milestones.CreateTask(&task); err != nil {
		return models.ProjectTask{}, err
	}
	return task, nil
}

func (service *MilestoneService) UpdateTaskStatus(taskID uint, status string) (models.ProjectTask, error) {
	if !models.IsKnownTaskStatus(status) {
		return models.ProjectTask{}, ErrInvalidTaskStatus
	}
	if _, err := service.milestones.FindTaskByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProjectTask{}, ErrTaskNotFound
		}
		return models.ProjectTask{}, err
	}
	if err := service.milestones.UpdateTaskByID(taskID, map[string]any{"status": status}); err != nil {
		return models.ProjectTask{}, err
	}
	return service.milestones.FindTaskByID(taskID)
}

func (service *MilestoneService) DeleteTask(taskID uint) error {
	if _, err := service.milestones.FindTaskByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return service.milestones.DeleteTask(taskID)
}
