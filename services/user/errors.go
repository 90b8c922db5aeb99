package user

import "errors"

// ErrEmailTaken signals a registration against an existing email.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials signals a failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotFound signals a missing user record.
var ErrNotFound = errors.New("user not found")
