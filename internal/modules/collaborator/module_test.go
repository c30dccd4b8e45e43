package collaborator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangid/wedding-collab/codebase/factory/dependency"
	collaboratorrepo "github.com/golangid/wedding-collab/internal/modules/collaborator/repository"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/usecase"
	mockinterfaces "github.com/golangid/wedding-collab/pkg/mocks/codebase/interfaces"
	"github.com/golangid/wedding-collab/pkg/shared/repository"
)

func TestNewModule(t *testing.T) {
	deps := dependency.InitDependency(dependency.SetValidator(&mockinterfaces.Validator{}))
	mod := NewModule(deps, usecase.SetRepository(repository.NewRepository(collaboratorrepo.NewCollaboratorRepoInMem(), nil, nil)))

	assert.Equal(t, Name, mod.Name())
	assert.NotNil(t, mod.RESTHandler())
	assert.NoError(t, mod.Disconnect(context.Background()))
}
