package database

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/golangid/wedding-collab/cache"
	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
	"github.com/golangid/wedding-collab/logger"
)

type redisInstance struct {
	read, write *redis.Pool
}

func (r *redisInstance) ReadPool() *redis.Pool {
	return r.read
}

func (r *redisInstance) WritePool() *redis.Pool {
	return r.write
}

func (r *redisInstance) Health() map[string]error {
	mErr := make(map[string]error)
	mErr["redis_read"] = ping(r.read)
	mErr["redis_write"] = ping(r.write)
	return mErr
}

func (r *redisInstance) Cache() interfaces.Cache {
	return cache.NewRedisCache(r.read, r.write)
}

func (r *redisInstance) Disconnect(ctx context.Context) (err error) {
	defer logger.LogWithDefer("\x1b[33;5mredis\x1b[0m: disconnect...")()

	if err := r.read.Close(); err != nil {
		return err
	}
	return r.write.Close()
}

// InitRedis connection from environment:
// REDIS_READ_DSN, REDIS_WRITE_DSN
// if want to create single connection, use REDIS_WRITE_DSN and set empty for REDIS_READ_DSN
func InitRedis() interfaces.RedisPool {
	defer logger.LogWithDefer("Load Redis connection...")()

	connReadDSN, connWriteDSN := env.BaseEnv().DbRedisReadDSN, env.BaseEnv().DbRedisWriteDSN
	if connReadDSN == "" {
		pool := ConnectRedis(connWriteDSN)
		return &redisInstance{read: pool, write: pool}
	}

	return &redisInstance{
		read:  ConnectRedis(connReadDSN),
		write: ConnectRedis(connWriteDSN),
	}
}

// ConnectRedis connect to redis with dsn, example: redis://:password@localhost:6379/0
func ConnectRedis(dsn string) *redis.Pool {
	pool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(dsn)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	if err := ping(pool); err != nil {
		panic("redis ping: " + err.Error())
	}
	return pool
}

func ping(pool *redis.Pool) error {
	conn := pool.Get()
	defer conn.Close()
	_, err := conn.Do("PING")
	return err
}
