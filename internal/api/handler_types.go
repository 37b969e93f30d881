package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkravets/launchpad/internal/db"
	"github.com/mkravets/launchpad/internal/services"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories       *db.Repositories
	authService        *services.AuthService
	profileService     *services.ProfileService
	verificationSvc    *services.VerificationService
	projectService     *services.ProjectService
	teamService        *services.TeamService
	applicationService *services.ApplicationService
	milestoneService   *services.MilestoneService
	messageService     *services.MessageService

	oauthProviders map[string]OAuthProvider
	loginLimiter   *attemptLimiter
	verifyLimiter  *attemptLimiter
}

// OAuthProvider pairs an authorization-code config with the endpoint used to
// resolve the signed-in identity after the token exchange.
type OAuthProvider struct {
	Config      *oauth2.Config
	UserInfoURL string
}

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const authTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, oauthProviders map[string]OAuthProvider) *Handler {
	handler := &Handler{
		db:             database,
		secretKey:      []byte(secretKey),
		cookieSecure:   cookieSecure,
		oauthProviders: oauthProviders,
		loginLimiter:   newAttemptLimiter(),
		verifyLimiter:  newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles)
	handler.verificationSvc = services.NewVerificationService(handler.repositories.Verifications, handler.repositories.Colleges)
	handler.projectService = services.NewProjectService(handler.repositories.Projects)
	handler.teamService = services.NewTeamService(handler.repositories.Teams)
	handler.applicationService = services.NewApplicationService(
		handler.repositories.Applications,
		handler.repositories.Projects,
		handler.repositories.Teams,
	)
	handler.milestoneService = services.NewMilestoneService(handler.repositories.Milestones)
	handler.messageService = services.NewMessageService(handler.repositories.Messages, handler.repositories.Users)
	return handler
}
