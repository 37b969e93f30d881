package services

import (
	"errors"

	"github.com/mkravets/launchpad/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	CreateWithProfile(user *models.User, profile *models.Profile) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates the user and their profile together. Creating the profile
// transactionally at sign-up closes the gap that used to require reactive
// repair when the profile row was missing.
func (service *AuthService) Register(emailRaw, passwordRaw, nameRaw, role string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	name, err := NormalizeSignupName(nameRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidateSignupRole(role); err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}
	profile := models.NewProfile(0, name)
	if err := service.users.CreateWithProfile(&user, &profile); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves credentials to a user. Bad email and bad password
// collapse into one error so callers cannot probe for registered addresses.
func (service *AuthService) Authenticate(emailRaw, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// FindOrCreateFederated resolves a provider-supplied identity to a local
// account, creating one on first sign-in. Federated accounts get an unusable
// password hash; they authenticate through the provider only.
func (service *AuthService) FindOrCreateFederated(provider, emailRaw, name, role string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	if err := ValidateSignupRole(role); err != nil {
		role = models.RoleStudent
	}
	user = models.User{
		Email:        email,
		PasswordHash: "!federated",
		Role:         role,
		Provider:     provider,
	}
	profile := models.NewProfile(0, name)
	if err := service.users.CreateWithProfile(&user, &profile); err != nil {
		return models.User{}, err
	}
	return user, nil
}
