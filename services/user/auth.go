package user

import (
	"fmt"
	"time"

	"hotelms/models"
	"hotelms/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// RegisterUser creates an account with a hashed password and returns it
// alongside a signed auth token.
func (s *DefaultUserService) RegisterUser(input RegisterUserInput) (*models.User, string, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User registered", zap.String("userId", usr.ID), zap.String("role", usr.Role))
	return usr, token, nil
}

// AuthenticateUser verifies the credentials and issues an auth token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.User, string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return usr, token, nil
}
