package usecase

import (
	"errors"
	"fmt"

	"github.com/AliHsynvv/airen-media-sub002/pkg/utils"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrSlugTaken          = errors.New("identifier already in use")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrInvalidTransition  = errors.New("booking status transition not allowed")
)

// ValidationError carries per-field messages from struct validation so the
// HTTP layer can return them alongside the 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func validate(data any) error {
	if errs := utils.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
