package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockinterfaces "github.com/golangid/wedding-collab/pkg/mocks/codebase/interfaces"
	mocksharedrepo "github.com/golangid/wedding-collab/pkg/mocks/shared/repository"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
)

func TestWeddingRepoCache_FindByID(t *testing.T) {
	ctx := context.Background()
	wedding := &shareddomain.Wedding{ID: "w1", OwnerID: "u-owner", Name: "O & P"}
	key := weddingCacheKey("w1")

	t.Run("Testcase #1: Positive, cache hit skip registry", func(t *testing.T) {
		payload, _ := json.Marshal(wedding)
		cache := &mockinterfaces.Cache{}
		cache.On("Get", mock.Anything, key).Return(payload, nil)
		next := &mocksharedrepo.WeddingRepository{}

		repo := NewWeddingRepoCache(next, cache, time.Minute)
		result, err := repo.FindByID(ctx, "w1")
		assert.NoError(t, err)
		assert.Equal(t, "u-owner", result.OwnerID)
		next.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #2: Positive, cache miss read registry and fill cache", func(t *testing.T) {
		cache := &mockinterfaces.Cache{}
		cache.On("Get", mock.Anything, key).Return(nil, redis.ErrNil)
		cache.On("Set", mock.Anything, key, mock.Anything, time.Minute).Return(nil)
		next := &mocksharedrepo.WeddingRepository{}
		next.On("FindByID", mock.Anything, "w1").Return(wedding, nil)

		repo := NewWeddingRepoCache(next, cache, time.Minute)
		result, err := repo.FindByID(ctx, "w1")
		assert.NoError(t, err)
		assert.Equal(t, wedding, result)
		cache.AssertCalled(t, "Set", mock.Anything, key, mock.Anything, time.Minute)
	})

	t.Run("Testcase #3: Positive, cache set failure is ignored", func(t *testing.T) {
		cache := &mockinterfaces.Cache{}
		cache.On("Get", mock.Anything, key).Return(nil, errors.New("dial tcp: connection refused"))
		cache.On("Set", mock.Anything, key, mock.Anything, time.Minute).Return(errors.New("dial tcp: connection refused"))
		next := &mocksharedrepo.WeddingRepository{}
		next.On("FindByID", mock.Anything, "w1").Return(wedding, nil)

		repo := NewWeddingRepoCache(next, cache, time.Minute)
		result, err := repo.FindByID(ctx, "w1")
		assert.NoError(t, err)
		assert.Equal(t, "w1", result.ID)
	})

	t.Run("Testcase #4: Negative, wedding not found is not cached", func(t *testing.T) {
		cache := &mockinterfaces.Cache{}
		cache.On("Get", mock.Anything, key).Return(nil, redis.ErrNil)
		next := &mocksharedrepo.WeddingRepository{}
		next.On("FindByID", mock.Anything, "w1").Return(nil, shareddomain.ErrWeddingNotFound)

		repo := NewWeddingRepoCache(next, cache, time.Minute)
		_, err := repo.FindByID(ctx, "w1")
		assert.ErrorIs(t, err, shareddomain.ErrWeddingNotFound)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
