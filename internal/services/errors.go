package services

import "errors"

// ErrAlreadyExists is returned when a uniqueness rule is violated at
// the domain layer (duplicate email, duplicate name).
var ErrAlreadyExists = errors.New("already exists")

// ErrUserNotRegistered is returned on login when no account matches
// the email.
var ErrUserNotRegistered = errors.New("user not registered")

// ErrInvalidCredentials is returned on login when the password does
// not verify.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidStatus is returned when a workout status value is not one
// of the known lifecycle states.
var ErrInvalidStatus = errors.New("invalid workout status")
