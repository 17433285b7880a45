package services

import (
	"errors"
	"net/http"

	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// wrapDomainError translates the sentinel errors coming out of the
// repositories and the synchronizer into AppErrors carrying an HTTP
// status and a stable error code. Unknown errors pass through and end
// up as a generic 500 in the handler layer.
func wrapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrNotFound), errors.Is(err, utils.ErrNotOwner):
		// Ownership misses read as not-found so one owner cannot
		// probe another owner's record IDs.
		return &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "The requested resource was not found",
			Err:        err,
		}
	case errors.Is(err, utils.ErrUnitOccupied):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeUnitOccupied,
			Message:    "The unit is already occupied by another tenant",
			Err:        err,
		}
	case errors.Is(err, utils.ErrUnitHasTenant):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeUnitHasTenant,
			Message:    "The unit still has a tenant assigned to it",
			Err:        err,
		}
	case errors.Is(err, utils.ErrUnitIDExists):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "A unit with this identifier already exists",
			Err:        err,
		}
	case errors.Is(err, utils.ErrNotAssigned):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "The tenant is not assigned to a unit",
			Err:        err,
		}
	case errors.Is(err, utils.ErrExternalServiceFailure):
		return &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "An upstream provider rejected the request",
			Err:        err,
		}
	case errors.Is(err, utils.ErrRowVersionConflict):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeRowVersionConflict,
			Message:    "The record was modified concurrently, please retry",
			Err:        err,
		}
	default:
		return err
	}
}
