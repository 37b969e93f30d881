package services

import (
	"errors"
	"strings"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
	ErrNotTeamMemberForApply    = errors.New("not a member of the applying team")
)

type ApplicationRepositoryPort interface {
	FindByID(applicationID uint) (models.Application, error)
	ListByProject(projectID uint) ([]models.Application, error)
	ListBySubmitter(userID uint) ([]models.Application, error)
	Create(application *models.Application) error
	UpdateStatus(applicationID uint, status string) error
}

type ApplicationService struct {
	applications ApplicationRepositoryPort
	projects     ProjectRepositoryPort
	teams        TeamRepositoryPort
}

func NewApplicationService(applications ApplicationRepositoryPort, projects ProjectRepositoryPort, teams TeamRepositoryPort) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		projects:     projects,
		teams:        teams,
	}
}

// ApplyToProject creates a pending application from a team to a project. The
// submitter must belong to the team they apply with.
func (service *ApplicationService) ApplyToProject(submittedBy uint, projectID uint, teamID uint, coverLetter string) (models.Application, error) {
	if _, err := service.projects.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, ErrProjectNotFound
		}
		return models.Application{}, err
	}

	if _, err := service.teams.FindMember(teamID, submittedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, ErrNotTeamMemberForApply
		}
		return models.Application{}, err
	}

	application := models.Application{
		ProjectID:   projectID,
		TeamID:      teamID,
		SubmittedBy: submittedBy,
		CoverLetter: strings.TrimSpace(coverLetter),
		Status:      models.ApplicationStatusPending,
	}
	if err := service.applications.Create(&application); err != nil {
		return models.Application{}, err
	}
	return application, nil
}

// UpdateStatus applies the requested status as-is. The service owns no
// transition state machine; the route guard restricts who may call this.
// Accepting an application does not touch the project's own status.
func (service *ApplicationService) UpdateStatus(applicationID uint, status string) (models.Application, error) {
	if !models.IsKnownApplicationStatus(status) {
		return models.Application{}, ErrInvalidApplicationStatus
	}

	if _, err := service.applications.FindByID(applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, ErrApplicationNotFound
		}
		return models.Application{}, err
	}

	if err := service.applications.UpdateStatus(applicationID, status); err != nil {
		return models.Application{}, err
	}
	return service.applications.FindByID(applicationID)
}

func (service *ApplicationService) GetApplication(applicationID uint) (models.Application, error) {
	application, err := service.applications.FindByID(applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Application{}, ErrApplicationNotFound
	}
	return application, err
}

func (service *ApplicationService) ListProjectApplications(projectID uint) ([]models.Application, error) {
	return service.applications.ListByProject(projectID)
}

func (service *ApplicationService) ListUserApplications(userID uint) ([]models.Application, error) {
	if userID == 0 {
		return []models.Application{}, nil
	}
	return service.applications.ListBySubmitter(userID)
}
