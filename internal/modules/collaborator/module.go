package collaborator

import (
	"context"

	"github.com/golangid/wedding-collab/codebase/factory/dependency"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/delivery/resthandler"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/usecase"
)

const (
	// Name module name
	Name types.Module = "Collaborator"
)

// Module model
type Module struct {
	uc          usecase.CollaboratorUsecase
	restHandler *resthandler.RestHandler
}

// NewModule module constructor
func NewModule(deps dependency.Dependency, opts ...usecase.OptionFunc) *Module {
	uc := usecase.NewCollaboratorUsecase(deps, opts...)

	var mod Module
	mod.uc = uc
	mod.restHandler = resthandler.NewRestHandler(uc, deps)
	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Disconnect drain background work of the module, registered as closer before brokers are disconnected
func (m *Module) Disconnect(ctx context.Context) error {
	return m.uc.Close(ctx)
}

// Name get module name
func (m *Module) Name() types.Module {
	return Name
}
