package resthandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap/zapcore"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/logger"
	"github.com/golangid/wedding-collab/tracer"
	"github.com/golangid/wedding-collab/wrapper"
)

// subject user id from bearer token claim
func subject(ctx context.Context) (string, bool) {
	claim := candishared.ParseTokenClaimFromContext(ctx)
	if claim == nil || claim.Subject == "" {
		return "", false
	}
	return claim.Subject, true
}

func unauthorized(c echo.Context) error {
	return wrapper.NewHTTPResponse(http.StatusUnauthorized, "Unauthorized").JSON(c.Response())
}

func toMultiError(err error) candihelper.MultiError {
	if mErr, ok := err.(candihelper.MultiError); ok {
		return mErr
	}
	return candihelper.NewMultiError().Append("payload", err)
}

// httpStatus map domain error to http status code
func httpStatus(err error) int {
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyCollaborator),
		errors.Is(err, domain.ErrDuplicateCollaboration),
		errors.Is(err, domain.ErrInvitationPending):
		return http.StatusConflict
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorResponse(c echo.Context, err error) error {
	code := httpStatus(err)

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return wrapper.NewHTTPResponse(code, "Failed validate payload", ve.Fields).JSON(c.Response())

	case code == http.StatusInternalServerError:
		tracer.SetError(c.Request().Context(), err)
		logger.Log(zapcore.ErrorLevel, err.Error(), "CollaboratorDeliveryREST", c.Path())
		return wrapper.NewHTTPResponse(code, http.StatusText(code)).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(code, err.Error()).JSON(c.Response())
}
