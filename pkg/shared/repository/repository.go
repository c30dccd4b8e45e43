package repository

import (
	"context"
	"sync"

	collaboratorrepo "github.com/golangid/wedding-collab/internal/modules/collaborator/repository"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
)

type (
	// WeddingRepository wedding registry, return shareddomain.ErrWeddingNotFound for unknown id
	WeddingRepository interface {
		FindByID(ctx context.Context, id string) (*shareddomain.Wedding, error)
	}

	// UserRepository user directory, return shareddomain.ErrUserNotFound when no account matches
	UserRepository interface {
		FindByID(ctx context.Context, id string) (*shareddomain.User, error)
		FindByEmail(ctx context.Context, email string) (*shareddomain.User, error)
	}

	// Repository register all repository used by modules
	Repository interface {
		CollaboratorRepo() collaboratorrepo.CollaboratorRepository
		WeddingRepo() WeddingRepository
		UserRepo() UserRepository
	}

	repositoryImpl struct {
		collaboratorRepo collaboratorrepo.CollaboratorRepository
		weddingRepo      WeddingRepository
		userRepo         UserRepository
	}
)

var (
	once       sync.Once
	globalRepo Repository
)

// NewRepository constructor
func NewRepository(collaborator collaboratorrepo.CollaboratorRepository, wedding WeddingRepository, user UserRepository) Repository {
	return &repositoryImpl{
		collaboratorRepo: collaborator,
		weddingRepo:      wedding,
		userRepo:         user,
	}
}

// SetSharedRepository set the global singleton repository implementation
func SetSharedRepository(repo Repository) {
	once.Do(func() {
		globalRepo = repo
	})
}

// GetSharedRepository returns the global singleton repository implementation
func GetSharedRepository() Repository {
	return globalRepo
}

func (r *repositoryImpl) CollaboratorRepo() collaboratorrepo.CollaboratorRepository {
	return r.collaboratorRepo
}

func (r *repositoryImpl) WeddingRepo() WeddingRepository {
	return r.weddingRepo
}

func (r *repositoryImpl) UserRepo() UserRepository {
	return r.userRepo
}
