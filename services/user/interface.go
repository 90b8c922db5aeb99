package user

import (
	userRepo "hotelms/database/repository/user"
	"hotelms/models"
)

// RegisterUserInput carries the fields accepted at registration.
// Registration always produces a customer account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// UpdateUserInput is a partial update; empty strings mean unchanged.
type UpdateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	Password string
}

// UserService defines account management operations.
type UserService interface {
	RegisterUser(input RegisterUserInput) (*models.User, string, error)
	AuthenticateUser(email, password string) (*models.User, string, error)
	GetUserByID(id string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(id string, input UpdateUserInput) (*models.User, error)
	DeleteUser(id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
