package dependency

import (
	"context"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/codebase/interfaces"
)

// Dependency base
type Dependency interface {
	GetMiddleware() interfaces.Middleware
	SetMiddleware(mw interfaces.Middleware)

	GetBroker(types.Worker) interfaces.Broker
	AddBroker(brokerType types.Worker, b interfaces.Broker)

	GetSQLDatabase() interfaces.SQLDatabase
	GetMongoDatabase() interfaces.MongoDatabase
	GetRedisPool() interfaces.RedisPool

	GetValidator() interfaces.Validator
	SetValidator(v interfaces.Validator)

	GetExtended(key string) interface{}
	AddExtended(key string, value interface{})

	interfaces.Closer
}

// Option func type
type Option func(*deps)

type deps struct {
	mw        interfaces.Middleware
	brokers   map[types.Worker]interfaces.Broker
	sqlDB     interfaces.SQLDatabase
	mongoDB   interfaces.MongoDatabase
	redisPool interfaces.RedisPool
	validator interfaces.Validator
	extended  map[string]interface{}
}

// SetMiddleware option func
func SetMiddleware(mw interfaces.Middleware) Option {
	return func(d *deps) {
		d.mw = mw
	}
}

// SetBrokers option func
func SetBrokers(brokers map[types.Worker]interfaces.Broker) Option {
	return func(d *deps) {
		d.brokers = brokers
	}
}

// SetSQLDatabase option func
func SetSQLDatabase(db interfaces.SQLDatabase) Option {
	return func(d *deps) {
		d.sqlDB = db
	}
}

// SetMongoDatabase option func
func SetMongoDatabase(db interfaces.MongoDatabase) Option {
	return func(d *deps) {
		d.mongoDB = db
	}
}

// SetRedisPool option func
func SetRedisPool(db interfaces.RedisPool) Option {
	return func(d *deps) {
		d.redisPool = db
	}
}

// SetValidator option func
func SetValidator(validator interfaces.Validator) Option {
	return func(d *deps) {
		d.validator = validator
	}
}

// SetExtended option func
func SetExtended(ext map[string]interface{}) Option {
	return func(d *deps) {
		d.extended = ext
	}
}

// InitDependency constructor
func InitDependency(opts ...Option) Dependency {
	opt := &deps{
		brokers:  make(map[types.Worker]interfaces.Broker),
		extended: make(map[string]interface{}),
	}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

func (d *deps) GetMiddleware() interfaces.Middleware {
	return d.mw
}
func (d *deps) SetMiddleware(mw interfaces.Middleware) {
	d.mw = mw
}
func (d *deps) GetBroker(brokerType types.Worker) interfaces.Broker {
	return d.brokers[brokerType]
}
func (d *deps) AddBroker(brokerType types.Worker, b interfaces.Broker) {
	if d.brokers == nil {
		d.brokers = make(map[types.Worker]interfaces.Broker)
	}
	d.brokers[brokerType] = b
}
func (d *deps) GetSQLDatabase() interfaces.SQLDatabase {
	return d.sqlDB
}
func (d *deps) GetMongoDatabase() interfaces.MongoDatabase {
	return d.mongoDB
}
func (d *deps) GetRedisPool() interfaces.RedisPool {
	return d.redisPool
}
func (d *deps) GetValidator() interfaces.Validator {
	return d.validator
}
func (d *deps) SetValidator(v interfaces.Validator) {
	d.validator = v
}
func (d *deps) GetExtended(key string) interface{} {
	return d.extended[key]
}
func (d *deps) AddExtended(key string, value interface{}) {
	if d.extended == nil {
		d.extended = make(map[string]interface{})
	}
	d.extended[key] = value
}

// Disconnect close all registered connection
func (d *deps) Disconnect(ctx context.Context) error {
	mErr := candihelper.NewMultiError()
	for name, b := range d.brokers {
		mErr.Append(string(name), safeClose(ctx, b))
	}
	if d.sqlDB != nil {
		mErr.Append("sql", d.sqlDB.Disconnect(ctx))
	}
	if d.mongoDB != nil {
		mErr.Append("mongo", d.mongoDB.Disconnect(ctx))
	}
	if d.redisPool != nil {
		mErr.Append("redis", d.redisPool.Disconnect(ctx))
	}

	if mErr.HasError() {
		return mErr
	}
	return nil
}

func safeClose(ctx context.Context, d interfaces.Closer) error {
	if d != nil {
		return d.Disconnect(ctx)
	}
	return nil
}
