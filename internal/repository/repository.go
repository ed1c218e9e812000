// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/futurelabs/labtrack/internal/domain"
	"gorm.io/gorm"
)

// translate maps driver-level constraint failures onto the domain error
// taxonomy. Requires gorm.Config{TranslateError: true} on the connection.
func translate(op, entity string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.ConflictError{Message: fmt.Sprintf("%s violates a unique constraint", entity)}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.IntegrityError{Message: fmt.Sprintf("%s %s violates a foreign key constraint", op, entity)}
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}
