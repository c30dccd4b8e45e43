package service

import (
	"github.com/golangid/wedding-collab/codebase/factory"
	"github.com/golangid/wedding-collab/codebase/factory/dependency"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/config"
	"github.com/golangid/wedding-collab/config/env"

	"github.com/golangid/wedding-collab/configs"
	"github.com/golangid/wedding-collab/internal/modules/collaborator"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/usecase"
)

// Service model
type Service struct {
	deps    dependency.Dependency
	modules []factory.ModuleFactory
	name    types.Service
}

// NewService in this service
func NewService(cfg *config.Config) factory.ServiceFactory {
	deps := configs.LoadConfigs(cfg)

	collaboratorModule := collaborator.NewModule(deps,
		usecase.SetNotificationTimeout(configs.GetEnv().NotificationTimeout),
	)
	// pending invitation dispatch publish through the brokers, drain it first on exit
	cfg.RegisterCloser(collaboratorModule)

	modules := []factory.ModuleFactory{
		collaboratorModule,
	}

	return &Service{
		deps:    deps,
		modules: modules,
		name:    types.Service(env.BaseEnv().ServiceName),
	}
}

// GetDependency method
func (s *Service) GetDependency() dependency.Dependency {
	return s.deps
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() types.Service {
	return s.name
}
