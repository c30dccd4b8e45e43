package domain

import (
	"errors"

	"github.com/golangid/wedding-collab/candihelper"
)

var (
	// ErrForbidden actor lacks the required capability or access to the wedding
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound wedding, collaborator or pending invitation does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyCollaborator email or user already collaborates on the wedding
	ErrAlreadyCollaborator = errors.New("already a collaborator")
	// ErrInvitationPending user has a pending invitation that must be accepted instead of joining
	ErrInvitationPending = errors.New("invitation pending")
	// ErrDuplicateCollaboration store unique constraint violation, surfaced as ErrAlreadyCollaborator
	ErrDuplicateCollaboration = errors.New("duplicate collaboration")
)

// ValidationError invalid input, field to message
type ValidationError struct {
	Fields candihelper.MultiError
}

// NewValidationError constructor with single field
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Fields: candihelper.NewMultiError().Append(field, err)}
}

// ValidationErrorFrom wrap multi error from validator
func ValidationErrorFrom(mErr candihelper.MultiError) *ValidationError {
	return &ValidationError{Fields: mErr}
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Fields.Error()
}

// IsValidationError check error chain contains ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
