package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User/Profile errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrProfileNotFound   = errors.New("profile not found")
)

// WorkEntry errors
var (
	ErrEntryNotFound    = errors.New("work entry not found")
	ErrEntryNotOwned    = errors.New("work entry belongs to another user")
	ErrEntryNotPending  = errors.New("work entry already reviewed")
	ErrNotKepalaSatker  = errors.New("only kepala satker may review entries")
	ErrInvalidUnit      = errors.New("invalid work entry unit")
	ErrInvalidStatus    = errors.New("invalid work entry status")
)
