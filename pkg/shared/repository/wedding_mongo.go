package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/tracer"
)

type weddingRepoMongo struct {
	readDB     *mongo.Database
	collection string
}

// NewWeddingRepoMongo mongo repo constructor
func NewWeddingRepoMongo(readDB *mongo.Database) WeddingRepository {
	return &weddingRepoMongo{readDB: readDB, collection: "weddings"}
}

func (r *weddingRepoMongo) FindByID(ctx context.Context, id string) (data *shareddomain.Wedding, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "WeddingRepoMongo:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("id", id)
	data = new(shareddomain.Wedding)
	err = r.readDB.Collection(r.collection).FindOne(ctx, bson.M{"_id": id}).Decode(data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shareddomain.ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
