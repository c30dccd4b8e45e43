package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/candiutils"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// userRepoHTTP user directory backed by user-service rest api
type userRepoHTTP struct {
	host        string
	basicAuth   string
	httpRequest candiutils.HTTPRequest
}

// NewUserRepoHTTP constructor, basicAuth is sent as Authorization header when not empty
func NewUserRepoHTTP(host, basicAuth string, httpRequest candiutils.HTTPRequest) UserRepository {
	return &userRepoHTTP{
		host:        strings.TrimSuffix(host, "/"),
		basicAuth:   basicAuth,
		httpRequest: httpRequest,
	}
}

func (r *userRepoHTTP) get(ctx context.Context, path string) (*shareddomain.User, error) {
	headers := map[string]string{candihelper.HeaderContentType: candihelper.HeaderMIMEApplicationJSON}
	if r.basicAuth != "" {
		headers[candihelper.HeaderAuthorization] = "Basic " + r.basicAuth
	}

	body, _, err := r.httpRequest.Do(ctx, http.MethodGet, r.host+path, nil, headers)
	var httpErr *candiutils.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
		return nil, shareddomain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data *shareddomain.User `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.ID == "" {
		return nil, shareddomain.ErrUserNotFound
	}
	return resp.Data, nil
}

func (r *userRepoHTTP) FindByID(ctx context.Context, id string) (data *shareddomain.User, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "UserRepoHTTP:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.get(ctx, "/v1/users/"+url.PathEscape(id))
}

func (r *userRepoHTTP) FindByEmail(ctx context.Context, email string) (data *shareddomain.User, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "UserRepoHTTP:FindByEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	return r.get(ctx, "/v1/users?email="+url.QueryEscape(email))
}
