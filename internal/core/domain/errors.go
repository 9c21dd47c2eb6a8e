package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrMissingFields = errors.New("all fields are required")
var ErrInvalidRole = errors.New("invalid role")

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password so that sign-in failures carry no user-enumeration signal.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrTooManyAttempts is returned when the sign-in throttle has tripped
// for an email address.
var ErrTooManyAttempts = errors.New("too many sign-in attempts")
