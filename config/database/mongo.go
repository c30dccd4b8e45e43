package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
	"github.com/golangid/wedding-collab/logger"
)

type mongoInstance struct {
	read, write *mongo.Database
}

func (m *mongoInstance) ReadDB() *mongo.Database {
	return m.read
}

func (m *mongoInstance) WriteDB() *mongo.Database {
	return m.write
}

func (m *mongoInstance) Health() map[string]error {
	ctx := context.Background()
	mErr := make(map[string]error)
	if m.read != nil {
		mErr["mongo_read"] = m.read.Client().Ping(ctx, readpref.Primary())
	}
	if m.write != nil {
		mErr["mongo_write"] = m.write.Client().Ping(ctx, readpref.Primary())
	}
	return mErr
}

func (m *mongoInstance) Disconnect(ctx context.Context) (err error) {
	defer logger.LogWithDefer("\x1b[33;5mmongodb\x1b[0m: disconnect...")()

	if m.write != nil {
		if err := m.write.Client().Disconnect(ctx); err != nil {
			return err
		}
	}
	if m.read != nil && m.read != m.write {
		err = m.read.Client().Disconnect(ctx)
	}
	return
}

// InitMongoDB return mongo db read & write instance from environment:
// MONGODB_HOST_WRITE, MONGODB_HOST_READ
// if want to create single connection, use MONGODB_HOST_WRITE and set empty for MONGODB_HOST_READ
func InitMongoDB(ctx context.Context, opts ...*options.ClientOptions) interfaces.MongoDatabase {
	defer logger.LogWithDefer("Load MongoDB connection...")()

	connReadDSN, connWriteDSN := env.BaseEnv().DbMongoReadHost, env.BaseEnv().DbMongoWriteHost
	if connReadDSN == "" {
		db := ConnectMongoDB(ctx, connWriteDSN, opts...)
		return &mongoInstance{read: db, write: db}
	}

	return &mongoInstance{
		read:  ConnectMongoDB(ctx, connReadDSN, opts...),
		write: ConnectMongoDB(ctx, connWriteDSN, opts...),
	}
}

// ConnectMongoDB connect to mongodb with dsn, database name is taken from dsn path
func ConnectMongoDB(ctx context.Context, dsn string, opts ...*options.ClientOptions) *mongo.Database {
	connDSN, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		log.Panic(err)
	}

	clientOpts := []*options.ClientOptions{
		options.Client().ApplyURI(connDSN.String()),
		options.Client().SetConnectTimeout(10 * time.Second),
		options.Client().SetServerSelectionTimeout(10 * time.Second),
	}
	clientOpts = append(clientOpts, opts...)

	client, err := mongo.Connect(ctx, clientOpts...)
	if err != nil {
		log.Panicf("mongodb: %v, conn: %s", err, connDSN.String())
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Panicf("mongodb ping: %v", err)
	}

	return client.Database(connDSN.Database)
}
