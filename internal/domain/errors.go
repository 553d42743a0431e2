package domain

import "errors"

// Validation
var (
	ErrValidation = errors.New("validation error")
)

// Not found
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrFormNotFound         = errors.New("registration form not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
)

// Conflict
var (
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrAlreadySubmitted  = errors.New("user has already submitted this form")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrSlugTaken         = errors.New("event slug is already taken")
)

// Precondition failed
var (
	ErrEventFull             = errors.New("event is full")
	ErrDeadlinePassed        = errors.New("registration deadline has passed")
	ErrEventCancelled        = errors.New("event is cancelled")
	ErrEventEnded            = errors.New("event has already ended")
	ErrSubmissionNotApproved = errors.New("submission is not approved")
	ErrFormRequired          = errors.New("event requires registration through its form")
)

// Access
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
