package services

import (
	"errors"
	"fmt"
)

// Domain errors. Raised here, translated to HTTP exactly once at the
// handler boundary.
var (
	ErrPublicationNotFound = errors.New("publication not found")
	ErrForbidden           = errors.New("you do not have permission for this publication")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
)

func publicationNotFound(id uint) error {
	return fmt.Errorf("publication with id = %d: %w", id, ErrPublicationNotFound)
}
