package user

import (
	"fmt"

	"hotelms/models"
	"hotelms/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// UpdateUser applies a partial update; a supplied password is re-hashed.
func (s *DefaultUserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	logger := utils.GetLogger()

	fields := map[string]any{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Email != "" {
		other, err := s.Repo.GetByEmail(input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, ErrEmailTaken
		}
		fields["email"] = input.Email
	}
	if input.Phone != "" {
		fields["phone"] = input.Phone
	}
	if input.Role != "" {
		fields["role"] = input.Role
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["passwordHash"] = string(hash)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		logger.Error("Failed to update user", zap.String("userId", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.Repo.GetByID(id)
}

// DeleteUser removes a user account.
func (s *DefaultUserService) DeleteUser(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(id)
}
