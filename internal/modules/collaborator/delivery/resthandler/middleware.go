package resthandler

import (
	"github.com/labstack/echo"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/usecase"
	"github.com/golangid/wedding-collab/tracer"
)

// ContextKeyAccess echo context key of the resolved domain.Access
const ContextKeyAccess = "weddingAccess"

// HTTPWeddingCapability echo middleware, require capability on wedding from ":weddingId" path param.
// Must be placed after HTTPBearerAuth
func HTTPWeddingCapability(uc usecase.CollaboratorUsecase, capability domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "Middleware:HTTPWeddingCapability")
			defer trace.Finish()

			userID, ok := subject(ctx)
			if !ok {
				return unauthorized(c)
			}

			access, err := uc.Authorize(ctx, userID, c.Param("weddingId"), capability)
			if err != nil {
				trace.SetError(err)
				return errorResponse(c, err)
			}
			c.Set(ContextKeyAccess, access)
			return next(c)
		}
	}
}
