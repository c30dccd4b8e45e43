package resthandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/codebase/factory/dependency"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/usecase"
	"github.com/golangid/wedding-collab/tracer"
	"github.com/golangid/wedding-collab/wrapper"
)

// RestHandler handler
type RestHandler struct {
	mw        interfaces.Middleware
	uc        usecase.CollaboratorUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.CollaboratorUsecase, deps dependency.Dependency) *RestHandler {
	return &RestHandler{
		uc: uc, mw: deps.GetMiddleware(), validator: deps.GetValidator(),
	}
}

// Mount handler with root "/"
// handling version in here
func (h *RestHandler) Mount(root *echo.Group) {
	v1Root := root.Group(candihelper.V1)
	v1Root.GET("/invitations", h.listMyInvitations, h.mw.HTTPBearerAuth)

	wedding := v1Root.Group("/weddings/:weddingId", h.mw.HTTPBearerAuth)
	wedding.GET("/my-role", h.getMyRole)
	wedding.POST("/join", h.joinByCode)
	for _, capability := range domain.Capabilities() {
		wedding.GET("/authorize/"+string(capability), h.authorize, HTTPWeddingCapability(h.uc, capability))
	}

	collaborators := wedding.Group("/collaborators")
	collaborators.GET("", h.listCollaborators)
	collaborators.POST("/invite", h.invite)
	collaborators.POST("/accept", h.acceptInvitation)
	collaborators.POST("/decline", h.declineInvitation)
	collaborators.PUT("/:collaboratorId/role", h.changeRole)
	collaborators.DELETE("/:collaboratorId", h.remove)
}

// readPayload validate body with json schema then bind and validate struct, empty body is allowed when optional
func (h *RestHandler) readPayload(c echo.Context, schemaID string, target interface{}, optional bool) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if optional && len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := h.validator.ValidateDocument(schemaID, body); err != nil {
		return domain.ValidationErrorFrom(toMultiError(err))
	}
	if err := json.Unmarshal(body, target); err != nil {
		return err
	}
	if err := h.validator.ValidateStruct(target); err != nil {
		return domain.ValidationErrorFrom(toMultiError(err))
	}
	return nil
}

func (h *RestHandler) getMyRole(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:GetMyRole")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	access, err := h.uc.Resolve(ctx, userID, c.Param("weddingId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", access).JSON(c.Response())
}

// authorize respond resolved access after HTTPWeddingCapability granted the capability
func (h *RestHandler) authorize(c echo.Context) error {
	return wrapper.NewHTTPResponse(http.StatusOK, "Granted", c.Get(ContextKeyAccess)).JSON(c.Response())
}

func (h *RestHandler) listCollaborators(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:ListCollaborators")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	data, err := h.uc.ListCollaborators(ctx, userID, c.Param("weddingId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) listMyInvitations(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:ListMyInvitations")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	data, err := h.uc.ListMyInvitations(ctx, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Success", data).JSON(c.Response())
}

func (h *RestHandler) invite(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:Invite")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	var payload domain.RequestInvite
	if err := h.readPayload(c, "collaborator/invite", &payload, false); err != nil {
		return errorResponse(c, err)
	}

	data, err := h.uc.Invite(ctx, userID, c.Param("weddingId"), &payload)
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Invitation created", data).JSON(c.Response())
}

func (h *RestHandler) acceptInvitation(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:AcceptInvitation")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	data, err := h.uc.AcceptInvitation(ctx, userID, c.Param("weddingId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Invitation accepted", data).JSON(c.Response())
}

func (h *RestHandler) declineInvitation(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:DeclineInvitation")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	data, err := h.uc.DeclineInvitation(ctx, userID, c.Param("weddingId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Invitation declined", data).JSON(c.Response())
}

func (h *RestHandler) joinByCode(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:JoinByCode")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	var payload domain.RequestJoin
	if err := h.readPayload(c, "collaborator/join", &payload, true); err != nil {
		return errorResponse(c, err)
	}

	data, err := h.uc.JoinByCode(ctx, userID, c.Param("weddingId"), payload.Role)
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Joined wedding", data).JSON(c.Response())
}

func (h *RestHandler) changeRole(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:ChangeRole")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	var payload domain.RequestChangeRole
	if err := h.readPayload(c, "collaborator/change_role", &payload, false); err != nil {
		return errorResponse(c, err)
	}

	data, err := h.uc.ChangeRole(ctx, userID, c.Param("weddingId"), c.Param("collaboratorId"), payload.Role)
	if err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Role updated", data).JSON(c.Response())
}

func (h *RestHandler) remove(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "CollaboratorDeliveryREST:Remove")
	defer trace.Finish()

	userID, ok := subject(ctx)
	if !ok {
		return unauthorized(c)
	}

	if err := h.uc.Remove(ctx, userID, c.Param("weddingId"), c.Param("collaboratorId")); err != nil {
		return errorResponse(c, err)
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Collaborator removed").JSON(c.Response())
}
