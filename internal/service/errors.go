package service

import "errors"

// Error kinds surfaced by the tracker services. Every error returned by a
// service wraps exactly one of them, so callers branch with [errors.Is].
var (
	// ErrNetworkFailure means the request could not complete.
	ErrNetworkFailure = errors.New("network failure")
	// ErrUnauthorized means the credential is missing or was rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is a client-side validation failure. No state was
	// changed and nothing was sent.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyActive is returned when a sleep session is already open.
	ErrAlreadyActive = errors.New("sleep session already active")
	// ErrNoActiveSession is returned when there is no sleep session to end.
	ErrNoActiveSession = errors.New("no active sleep session")
	// ErrServerFailure means the server answered with an error or an
	// unreadable body.
	ErrServerFailure = errors.New("server failure")
	// ErrStorageFailure means the device-local store could not be read or
	// written.
	ErrStorageFailure = errors.New("local storage failure")
	// ErrControllerClosed is returned by a tracker after Close.
	ErrControllerClosed = errors.New("controller closed")
)

// Authentication errors returned by [ClientAuthService].
var (
	ErrRequiredFields     = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordsMismatch  = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
)
