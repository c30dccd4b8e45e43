package cache

import (
	"context"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/golangid/wedding-collab/tracer"
)

// RedisCache redis implement interfaces.Cache
type RedisCache struct {
	read, write *redis.Pool
}

// NewRedisCache constructor
func NewRedisCache(read, write *redis.Pool) *RedisCache {
	return &RedisCache{read: read, write: write}
}

// Get method, return redis.ErrNil when key is not exist
func (r *RedisCache) Get(ctx context.Context, key string) (data []byte, err error) {
	trace := tracer.StartTrace(ctx, "redis:get")
	defer func() { trace.SetError(err); trace.Log("result", data); trace.Finish() }()

	trace.SetTag("db.statement", "GET")
	trace.SetTag("db.key", key)

	cl := r.read.Get()
	defer cl.Close()

	return redis.Bytes(cl.Do("GET", key))
}

// Set method, zero expire means no expiration
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expire time.Duration) (err error) {
	trace := tracer.StartTrace(ctx, "redis:set")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("db.statement", "SET")
	trace.SetTag("db.key", key)
	trace.SetTag("db.expired", expire.String())
	trace.Log("value", value)

	cl := r.write.Get()
	defer cl.Close()

	if expire > 0 {
		_, err = cl.Do("SET", key, value, "EX", int(expire.Seconds()))
		return
	}
	_, err = cl.Do("SET", key, value)
	return
}

// Exists method
func (r *RedisCache) Exists(ctx context.Context, key string) (exist bool, err error) {
	trace := tracer.StartTrace(ctx, "redis:exists")
	defer func() { trace.SetError(err); trace.Log("result", exist); trace.Finish() }()

	trace.SetTag("db.statement", "EXISTS")
	trace.SetTag("db.key", key)

	cl := r.read.Get()
	defer cl.Close()

	return redis.Bool(cl.Do("EXISTS", key))
}

// Delete method, key with suffix "*" delete all matched keys
func (r *RedisCache) Delete(ctx context.Context, key string) (err error) {
	trace := tracer.StartTrace(ctx, "redis:delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	trace.SetTag("db.statement", "DEL")
	trace.SetTag("db.key", key)

	cl := r.write.Get()
	defer cl.Close()

	var keys []string
	if strings.HasSuffix(key, "*") {
		keys, _ = redis.Strings(cl.Do("KEYS", key))
	}

	if len(keys) == 0 {
		keys = []string{key}
	}

	for _, k := range keys {
		if _, err = cl.Do("DEL", k); err != nil {
			return err
		}
	}
	return nil
}
