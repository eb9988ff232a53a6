package service

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
)

var (
	// errRowNotFound rolls back a transaction whose target row vanished.
	errRowNotFound = errors.New("row not found")
	// errRejected rolls back a transaction after a validation failure.
	errRejected = errors.New("rejected")
)

type Tx interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups what every tenant service needs besides its own repository.
type Deps struct {
	Tx       Tx
	Refs     *ReferenceValidator
	Audit    audit.Logger
	Validate *validator.Validate
}

// validateRequest trims every string of req and checks its shape.
func validateRequest(validate *validator.Validate, req any) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}
	return nil
}
