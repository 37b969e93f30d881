package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mkravets/launchpad/internal/models"
)

var (
	ErrInvalidProjectTitle    = errors.New("invalid project title")
	ErrInvalidProjectCategory = errors.New("invalid project category")
	ErrInvalidPaymentModel    = errors.New("invalid payment model")
	ErrInvalidStipendAmount   = errors.New("invalid stipend amount")
	ErrInvalidTeamSize        = errors.New("invalid team size")
	ErrInvalidProjectStatus   = errors.New("invalid project status")
	ErrInvalidProjectDates    = errors.New("invalid project dates")
)

const maxProjectTitleLength = 160

type ProjectRepositoryPort interface {
	List() ([]models.Project, error)
	ListByCreator(userID uint) ([]models.Project, error)
	FindByID(projectID uint) (models.Project, error)
	Create(project *models.Project) error
	UpdateByID(projectID uint, updates map[string]any) error
	UpdateDetails(projectID uint, project models.Project) error
	Delete(projectID uint) error
}

type ProjectService struct {
	projects ProjectRepositoryPort
}

type ProjectInput struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	RequiredSkills []string   `json:"required_skills"`
	Deliverables   []string   `json:"deliverables"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	TeamSize       int        `json:"team_size"`
	PaymentModel   string     `json:"payment_model"`
	StipendAmount  int        `json:"stipend_amount"`
}

func NewProjectService(projects ProjectRepositoryPort) *ProjectService {
	return &ProjectService{projects: projects}
}

func (service *ProjectService) ListProjects() ([]models.Project, error) {
	return service.projects.List()
}

// ListUserProjects filters by creator. Callers without a principal get an
// empty list, never an error.
func (service *ProjectService) ListUserProjects(userID uint) ([]models.Project, error) {
	if userID == 0 {
		return []models.Project{}, nil
	}
	return service.projects.ListByCreator(userID)
}

func (service *ProjectService) GetProject(projectID uint) (models.Project, error) {
	return service.projects.FindByID(projectID)
}

// CreateProject validates the payload and persists it. The server assigns the
// id and timestamps and defaults status to open; client-side values for those
// are never authoritative.
func (service *ProjectService) CreateProject(createdBy uint, input ProjectInput) (models.Project, error) {
	if err := validateProjectInput(&input); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		CreatedBy:      createdBy,
		Title:          input.Title,
		Description:    strings.TrimSpace(input.Description),
		Category:       input.Category,
		RequiredSkills: NormalizeStringList(input.RequiredSkills),
		Deliverables:   normalizeDeliverables(input.Deliverables),
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		TeamSize:       input.TeamSize,
		PaymentModel:   input.PaymentModel,
		StipendAmount:  input.StipendAmount,
		Status:         models.ProjectStatusOpen,
	}
	if err := service.projects.Create(&project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (service *ProjectService) UpdateProject(projectID uint, input ProjectInput) (models.Project, error) {
	if err := validateProjectInput(&input); err != nil {
		return models.Project{}, err
	}

	updates := models.Project{
		Title:          input.Title,
		Description:    strings.TrimSpace(input.Description),
		Category:       input.Category,
		RequiredSkills: NormalizeStringList(input.RequiredSkills),
		Deliverables:   normalizeDeliverables(input.Deliverables),
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		TeamSize:       input.TeamSize,
		PaymentModel:   input.PaymentModel,
		StipendAmount:  input.StipendAmount,
	}
	if err := service.projects.UpdateDetails(projectID, updates); err != nil {
		return models.Project{}, err
	}
	return service.projects.FindByID(projectID)
}

func (service *ProjectService) UpdateProjectStatus(projectID uint, status string) (models.Project, error) {
	if !models.IsKnownProjectStatus(status) {
		return models.Project{}, ErrInvalidProjectStatus
	}
	if err := service.projects.UpdateByID(projectID, map[string]any{"status": status}); err != nil {
		return models.Project{}, err
	}
	return service.projects.FindByID(projectID)
}

func (service *ProjectService) DeleteProject(projectID uint) error {
	return service.projects.Delete(projectID)
}

func validateProjectInput(input *ProjectInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || len(input.Title) > maxProjectTitleLength {
		return ErrInvalidProjectTitle
	}

	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		input.Category = "other"
	}
	if !isKnownProjectCategory(input.Category) {
		return ErrInvalidProjectCategory
	}

	if input.PaymentModel == "" {
		input.PaymentModel = models.PaymentUnpaid
	}
	if !models.IsKnownPaymentModel(input.PaymentModel) {
		return ErrInvalidPaymentModel
	}
	if input.PaymentModel == models.PaymentStipend {
		if input.StipendAmount <= 0 {
			return ErrInvalidStipendAmount
		}
	} else {
		input.StipendAmount = 0
	}

	if input.TeamSize <= 0 {
		return ErrInvalidTeamSize
	}

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return ErrInvalidProjectDates
	}
	return nil
}

func isKnownProjectCategory(category string) bool {
	for _, known := range models.ProjectCategories() {
		if category == known {
			return true
		}
	}
	return false
}

// normalizeDeliverables trims and drops blanks but keeps duplicates and
// order: deliverables are an ordered checklist, not a set.
func normalizeDeliverables(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
