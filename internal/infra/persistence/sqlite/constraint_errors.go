package sqlite

import (
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for SQLite error checking. The dialector translates
// SQLITE_CONSTRAINT_UNIQUE and SQLITE_CONSTRAINT_PRIMARYKEY into gorm.ErrDuplicatedKey.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// translateError maps a gorm error onto the domain taxonomy.
// notFound and duplicate may be nil when the operation cannot produce them.
func translateError(err error, notFound, duplicate *domainerrors.BaseError, details string) error {
	if err == nil {
		return nil
	}
	if notFound != nil && isNotFound(err) {
		return notFound.WrapMessage(details)
	}
	if duplicate != nil && isUniqueConstraintViolation(err) {
		return duplicate.WrapMessage(details)
	}

	return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, details))
}
