package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangid/wedding-collab/candiutils"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
)

func newUserServiceStub(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic dXNlcjpwYXNz", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/v1/users/u-alice",
			r.URL.Path == "/v1/users" && r.URL.Query().Get("email") == "alice@example.com":
			w.Write([]byte(`{"success":true,"code":200,"message":"ok","data":{"id":"u-alice","email":"alice@example.com","name":"Alice"}}`))
		case r.URL.Path == "/v1/users/u-broken":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"code":500,"message":"database down"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"code":404,"message":"user not found"}`))
		}
	}))
}

func TestUserRepoHTTP(t *testing.T) {
	server := newUserServiceStub(t)
	defer server.Close()

	repo := NewUserRepoHTTP(server.URL+"/", "dXNlcjpwYXNz", candiutils.NewHTTPRequest(candiutils.HTTPRequestSetRetries(0)))
	ctx := context.Background()

	t.Run("Testcase #1: Positive, find by id", func(t *testing.T) {
		user, err := repo.FindByID(ctx, "u-alice")
		assert.NoError(t, err)
		assert.Equal(t, &shareddomain.User{ID: "u-alice", Email: "alice@example.com", Name: "Alice"}, user)
	})

	t.Run("Testcase #2: Positive, find by email", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "u-alice", user.ID)
	})

	t.Run("Testcase #3: Negative, unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "bob@example.com")
		assert.ErrorIs(t, err, shareddomain.ErrUserNotFound)
	})

	t.Run("Testcase #4: Negative, user service error", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "u-broken")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, shareddomain.ErrUserNotFound)
	})
}

func TestSharedRepository(t *testing.T) {
	repo := NewRepository(nil, NewWeddingRepoMongo(nil), NewUserRepoMongo(nil))
	SetSharedRepository(repo)
	assert.Equal(t, repo, GetSharedRepository())
	assert.NotNil(t, GetSharedRepository().WeddingRepo())
	assert.NotNil(t, GetSharedRepository().UserRepo())
}
