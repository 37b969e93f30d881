package services

import (
	"errors"
	"strings"

	"github.com/mkravets/launchpad/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidTeamName    = errors.New("invalid team name")
	ErrTeamNotFound       = errors.New("team not found")
	ErrNotTeamLead        = errors.New("not the team lead")
	ErrAlreadyTeamMember  = errors.New("already a team member")
	ErrTeamMemberNotFound = errors.New("team member not found")
)

const maxTeamNameLength = 120

type TeamRepositoryPort interface {
	List() ([]models.Team, error)
	ListByMember(userID uint) ([]models.Team, error)
	FindByID(teamID uint) (models.Team, error)
	CreateWithLead(team *models.Team) error
	UpdateDetails(teamID uint, team models.Team) error
	Delete(teamID uint) error
	AddMember(member *models.TeamMember) error
	FindMember(teamID uint, userID uint) (models.TeamMember, error)
	UpdateMemberStatus(memberID uint, status string) error
	RemoveMember(memberID uint) error
}

type TeamService struct {
	teams TeamRepositoryPort
}

func NewTeamService(teams TeamRepositoryPort) *TeamService {
	return &TeamService{teams: teams}
}

func (service *TeamService) ListTeams() ([]models.Team, error) {
	return service.teams.List()
}

func (service *TeamService) ListUserTeams(userID uint) ([]models.Team, error) {
	if userID == 0 {
		return []models.Team{}, nil
	}
	return service.teams.ListByMember(userID)
}

func (service *TeamService) GetTeam(teamID uint) (models.Team, error) {
	team, err := service.teams.FindByID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Team{}, ErrTeamNotFound
	}
	return team, err
}

// CreateTeam makes the creator the lead with an active membership.
func (service *TeamService) CreateTeam(leadID uint, name, description string, skills []string) (models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTeamNameLength {
		return models.Team{}, ErrInvalidTeamName
	}

	team := models.Team{
		Name:        name,
		LeadID:      leadID,
		Description: strings.TrimSpace(description),
		Skills:      NormalizeStringList(skills),
	}
	if err := service.teams.CreateWithLead(&team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (service *TeamService) UpdateTeam(teamID uint, actorID uint, name, description string, skills []string) (models.Team, error) {
	team, err := service.GetTeam(teamID)
	if err != nil {
		return models.Team{}, err
	}
	if team.LeadID != actorID {
		return models.Team{}, ErrNotTeamLead
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTeamNameLength {
		return models.Team{}, ErrInvalidTeamName
	}

	updates := models.Team{
		Name:        name,
		Description: strings.TrimSpace(description),
		Skills:      NormalizeStringList(skills),
	}
	if err := service.teams.UpdateDetails(teamID, updates); err != nil {
		return models.Team{}, err
	}
	return service.GetTeam(teamID)
}

func (service *TeamService) DeleteTeam(teamID uint, actorID uint) error {
	team, err := service.GetTeam(teamID)
	if err != nil {
		return err
	}
	if team.LeadID != actorID {
		return ErrNotTeamLead
	}
	return service.teams.Delete(teamID)
}

// RequestToJoin adds the user as a pending member; the lead activates them.
func (service *TeamService) RequestToJoin(teamID uint, userID uint) (models.TeamMember, error) {
	if _, err := service.GetTeam(teamID); err != nil {
		return models.TeamMember{}, err
	}

	if _, err := service.teams.FindMember(teamID, userID); err == nil {
		return models.TeamMember{}, ErrAlreadyTeamMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TeamMember{}, err
	}

	member := models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   models.TeamMemberRoleMember,
		Status: models.TeamMemberStatusPending,
	}
	if err := service.teams.AddMember(&member); err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

func (service *TeamService) ApproveMember(teamID uint, actorID uint, memberUserID uint) error {
	team, err := service.GetTeam(teamID)
	if err != nil {
		return err
	}
	if team.LeadID != actorID {
		return ErrNotTeamLead
	}

	member, err := service.teams.FindMember(teamID, memberUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTeamMemberNotFound
	}
	if err != nil {
		return err
	}
	return service.teams.UpdateMemberStatus(member.ID, models.TeamMemberStatusActive)
}

func (service *TeamService) RemoveMember(teamID uint, actorID uint, memberUserID uint) error {
	team, err := service.GetTeam(teamID)
	if err != nil {
		return err
	}
	if team.LeadID != actorID && actorID != memberUserID {
		return ErrNotTeamLead
	}
	if memberUserID == team.LeadID {
		return ErrNotTeamLead
	}

	member, err := service.teams.FindMember(teamID, memberUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTeamMemberNotFound
	}
	if err != nil {
		return err
	}
	return service.teams.RemoveMember(member.ID)
}
