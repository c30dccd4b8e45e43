package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/internal/modules/collaborator/domain"
	"github.com/golangid/wedding-collab/tracer"
)

type collaboratorRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewCollaboratorRepoMongo mongo repo constructor
func NewCollaboratorRepoMongo(readDB, writeDB *mongo.Database) CollaboratorRepository {
	return &collaboratorRepoMongo{
		readDB, writeDB, "collaborators",
	}
}

// EnsureCollaboratorIndexes create unique indexes for (weddingId, email) and bound (weddingId, userId)
func EnsureCollaboratorIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("collaborators").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "weddingId", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_wedding_email").SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "weddingId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetName("uniq_wedding_user").SetUnique(true).
				SetPartialFilterExpression(bson.M{"userId": bson.M{"$type": "string"}}),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}, {Key: "acceptedAt", Value: -1}},
			Options: options.Index().SetName("idx_user_status"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_email_status"),
		},
	})
	return err
}

func (r *collaboratorRepoMongo) findOne(ctx context.Context, where bson.M, opts ...*options.FindOneOptions) (*domain.Collaborator, error) {
	var data domain.Collaborator
	err := r.readDB.Collection(r.collection).FindOne(ctx, where, opts...).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *collaboratorRepoMongo) FindByWeddingAndUser(ctx context.Context, weddingID, userID string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:FindByWeddingAndUser")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"weddingId": weddingID, "userId": userID}
	trace.SetTag("query", where)
	return r.findOne(ctx, where)
}

func (r *collaboratorRepoMongo) FindByWeddingAndEmail(ctx context.Context, weddingID, email string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:FindByWeddingAndEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"weddingId": weddingID, "email": email}
	trace.SetTag("query", where)
	return r.findOne(ctx, where)
}

func (r *collaboratorRepoMongo) FindByID(ctx context.Context, id string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("id", id)
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *collaboratorRepoMongo) FindAcceptedByUser(ctx context.Context, userID string) (data *domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:FindAcceptedByUser")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"userId": userID, "status": domain.StatusAccepted}
	trace.SetTag("query", where)
	return r.findOne(ctx, where, options.FindOne().SetSort(bson.D{{Key: "acceptedAt", Value: -1}}))
}

func (r *collaboratorRepoMongo) fetch(ctx context.Context, where bson.M) (data []domain.Collaborator, err error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "invitedAt", Value: 1}})
	cur, err := r.readDB.Collection(r.collection).Find(ctx, where, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	data = []domain.Collaborator{}
	err = cur.All(ctx, &data)
	return
}

func (r *collaboratorRepoMongo) FetchByWedding(ctx context.Context, weddingID string) (data []domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:FetchByWedding")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"weddingId": weddingID}
	trace.SetTag("query", where)
	return r.fetch(ctx, where)
}

func (r *collaboratorRepoMongo) FetchPendingByEmail(ctx context.Context, email string) (data []domain.Collaborator, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:FetchPendingByEmail")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := bson.M{"email": email, "status": domain.StatusPending}
	trace.SetTag("query", where)
	return r.fetch(ctx, where)
}

func (r *collaboratorRepoMongo) Insert(ctx context.Context, data *domain.Collaborator) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:Insert")
	defer func() { trace.SetError(err); trace.Finish() }()

	if data.ID == "" {
		data.ID = primitive.NewObjectID().Hex()
	}
	data.UpdatedAt = time.Now()
	tracer.Log(ctx, "data", data)

	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicateCollaboration, err)
	}
	return err
}

// buildMongoPatch build update filter and document from patch, guard fields are part of the filter
func buildMongoPatch(id string, patch domain.CollaboratorPatch, now time.Time) (filter, update bson.M) {
	filter = bson.M{"_id": id}
	if patch.ExpectStatus != nil {
		filter["status"] = *patch.ExpectStatus
	}
	if patch.ExpectUnbound {
		filter["userId"] = bson.M{"$not": bson.M{"$type": "string"}}
	}

	set := bson.M{"updatedAt": now}
	if patch.UserID != nil {
		set["userId"] = *patch.UserID
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if perm := patch.Permissions(); perm != nil {
		set["role"] = *patch.Role
		set["permissions"] = *perm
	}
	if patch.AcceptedAt != nil {
		set["acceptedAt"] = *patch.AcceptedAt
	}
	return filter, bson.M{"$set": set}
}

func (r *collaboratorRepoMongo) Update(ctx context.Context, id string, patch domain.CollaboratorPatch) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:Update")
	defer func() { trace.SetError(err); trace.Finish() }()

	filter, update := buildMongoPatch(id, patch, time.Now())
	trace.SetTag("query", filter)
	tracer.Log(ctx, "update", update)

	res, err := r.writeDB.Collection(r.collection).UpdateOne(ctx, filter, update,
		&options.UpdateOptions{Upsert: candihelper.ToBoolPtr(false)})
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicateCollaboration, err)
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *collaboratorRepoMongo) Delete(ctx context.Context, id string) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "CollaboratorRepoMongo:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	res, err := r.writeDB.Collection(r.collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
