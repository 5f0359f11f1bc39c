package impl

import (
	"strings"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"

	"github.com/go-playground/validator/v10"
)

// inputValidator is safe for concurrent use and caches struct metadata.
var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the validate tags of a DTO and reports every failing field at once.
func validateInput(input any) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing input")
	}

	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate input")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}

// requireSession rejects callers that are not signed in.
func requireSession(session *entity.Session) error {
	if !session.IsAuthenticated() {
		return domainerrors.ErrNoSession
	}

	return nil
}

// requireAdmin trusts the role cached in the session; it is not re-read from the store.
func requireAdmin(session *entity.Session) error {
	if err := requireSession(session); err != nil {
		return err
	}
	if !session.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	return nil
}
