package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
)

// collaboratorRepoInMem keep unique checks and insert under one lock, so concurrent insert for same key has exactly one winner
type collaboratorRepoInMem struct {
	mu   sync.RWMutex
	data map[string]domain.Collaborator
	now  func() time.Time
}

// NewCollaboratorRepoInMem in memory repo constructor, used for local run and tests
func NewCollaboratorRepoInMem() CollaboratorRepository {
	return &collaboratorRepoInMem{
		data: make(map[string]domain.Collaborator),
		now:  time.Now,
	}
}

func (r *collaboratorRepoInMem) findFirst(match func(c *domain.Collaborator) bool) (*domain.Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.data {
		if match(&c) {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *collaboratorRepoInMem) filter(match func(c *domain.Collaborator) bool) []domain.Collaborator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Collaborator{}
	for _, c := range r.data {
		if match(&c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].InvitedAt.Equal(result[j].InvitedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].InvitedAt.Before(result[j].InvitedAt)
	})
	return result
}

func (r *collaboratorRepoInMem) FindByWeddingAndUser(ctx context.Context, weddingID, userID string) (*domain.Collaborator, error) {
	return r.findFirst(func(c *domain.Collaborator) bool {
		return c.WeddingID == weddingID && c.IsBound() && *c.UserID == userID
	})
}

func (r *collaboratorRepoInMem) FindByWeddingAndEmail(ctx context.Context, weddingID, email string) (*domain.Collaborator, error) {
	return r.findFirst(func(c *domain.Collaborator) bool {
		return c.WeddingID == weddingID && c.Email == email
	})
}

func (r *collaboratorRepoInMem) FindByID(ctx context.Context, id string) (*domain.Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *collaboratorRepoInMem) FindAcceptedByUser(ctx context.Context, userID string) (*domain.Collaborator, error) {
	accepted := r.filter(func(c *domain.Collaborator) bool {
		return c.Status == domain.StatusAccepted && c.IsBound() && *c.UserID == userID
	})
	if len(accepted) == 0 {
		return nil, domain.ErrNotFound
	}

	latest := accepted[0]
	for _, c := range accepted[1:] {
		if acceptedAfter(c, latest) {
			latest = c
		}
	}
	return &latest, nil
}

func acceptedAfter(a, b domain.Collaborator) bool {
	if a.AcceptedAt == nil {
		return false
	}
	if b.AcceptedAt == nil {
		return true
	}
	return a.AcceptedAt.After(*b.AcceptedAt)
}

func (r *collaboratorRepoInMem) FetchByWedding(ctx context.Context, weddingID string) ([]domain.Collaborator, error) {
	return r.filter(func(c *domain.Collaborator) bool {
		return c.WeddingID == weddingID
	}), nil
}

func (r *collaboratorRepoInMem) FetchPendingByEmail(ctx context.Context, email string) ([]domain.Collaborator, error) {
	return r.filter(func(c *domain.Collaborator) bool {
		return c.Email == email && c.Status == domain.StatusPending
	}), nil
}

// conflicts must be called with write lock held
func (r *collaboratorRepoInMem) conflicts(candidate *domain.Collaborator) bool {
	for id, c := range r.data {
		if id == candidate.ID || c.WeddingID != candidate.WeddingID {
			continue
		}
		if c.Email == candidate.Email {
			return true
		}
		if c.IsBound() && candidate.IsBound() && *c.UserID == *candidate.UserID {
			return true
		}
	}
	return false
}

func (r *collaboratorRepoInMem) Insert(ctx context.Context, data *domain.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	if _, exist := r.data[data.ID]; exist || r.conflicts(data) {
		return domain.ErrDuplicateCollaboration
	}
	data.UpdatedAt = r.now()

	stored := *data
	if data.UserID != nil {
		userID := *data.UserID
		stored.UserID = &userID
	}
	r.data[data.ID] = stored
	return nil
}

func (r *collaboratorRepoInMem) Update(ctx context.Context, id string, patch domain.CollaboratorPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.data[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !patch.Apply(&c, r.now()) {
		return domain.ErrNotFound
	}
	if r.conflicts(&c) {
		return domain.ErrDuplicateCollaboration
	}
	r.data[id] = c
	return nil
}

func (r *collaboratorRepoInMem) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}
