package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/tracer"
)

type userRepoMongo struct {
	readDB     *mongo.Database
	collection string
}

// NewUserRepoMongo mongo repo constructor
func NewUserRepoMongo(readDB *mongo.Database) UserRepository {
	return &userRepoMongo{readDB: readDB, collection: "users"}
}

func (r *userRepoMongo) findOne(ctx context.Context, where bson.M, opts ...*options.FindOneOptions) (*shareddomain.User, error) {
	var data shareddomain.User
	err := r.readDB.Collection(r.collection).FindOne(ctx, where, opts...).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shareddomain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *userRepoMongo) FindByID(ctx context.Context, id string) (data *shareddomain.User, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "UserRepoMongo:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("id", id)
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail match email case-insensitive using collation strength 2
func (r *userRepoMongo) FindByEmail(ctx context.Context, email string) (data *shareddomain.User, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "UserRepoMongo:FindByEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	opt := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})
	return r.findOne(ctx, bson.M{"email": strings.TrimSpace(email)}, opt)
}
