package http

import (
	"errors"
	"net/http"

	"github.com/thtta/farmlend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// handleError translates domain errors to transport responses. Validation,
// reference and self-reference failures are client errors; a missing object
// is 404; anything unclassified is a generic 500 so datastore details never
// leak to the client.
func handleError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrSelfReference),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		ctx.Logger().Error(err)
		return respondError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
