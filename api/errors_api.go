package api

import (
	"errors"
	"log"
	"net/http"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

// FieldError is a request that failed validation before it
// reached the placement rules.
type FieldError struct {
	Field string
	Err   error
}

func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// toRespErr is the only place that knows how errors
// look on the wire.
func toRespErr(err error) (int, mc.RespErr) {
	var (
		perr  *cerr.PlacementError
		ferr  *FieldError
		nferr *cerr.NotFoundError
	)

	switch {
	case errors.As(err, &perr):
		return http.StatusBadRequest, mc.RespErr{
			Field:        perr.Field,
			ErrorDetails: perr.Message,
			Message:      perr.Kind.String(),
		}

	case errors.As(err, &ferr):
		return http.StatusBadRequest, mc.RespErr{
			Field:        ferr.Field,
			ErrorDetails: ferr.Err.Error(),
			Message:      "InvalidRequest",
		}

	case errors.As(err, &nferr):
		return http.StatusNotFound, mc.RespErr{
			Field:        nferr.Resource,
			ErrorDetails: nferr.Error(),
			Message:      "NotFound",
		}

	default:
		log.Println("unexpected error:", err)
		return http.StatusInternalServerError, mc.RespErr{
			Message: "InternalError",
		}
	}
}
