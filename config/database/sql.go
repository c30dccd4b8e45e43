package database

import (
	"context"
	"database/sql"
	"fmt"

	// register postgres driver
	_ "github.com/lib/pq"

	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
	"github.com/golangid/wedding-collab/logger"
)

type sqlInstance struct {
	read, write *sql.DB
}

func (s *sqlInstance) ReadDB() *sql.DB {
	return s.read
}

func (s *sqlInstance) WriteDB() *sql.DB {
	return s.write
}

func (s *sqlInstance) Health() map[string]error {
	mErr := make(map[string]error)
	if s.read != nil {
		mErr["sql_read"] = s.read.Ping()
	}
	if s.write != nil {
		mErr["sql_write"] = s.write.Ping()
	}
	return mErr
}

func (s *sqlInstance) Disconnect(ctx context.Context) (err error) {
	defer logger.LogWithDefer("\x1b[33;5msql\x1b[0m: disconnect...")()

	if s.read != s.write {
		if err := s.read.Close(); err != nil {
			return err
		}
	}
	return s.write.Close()
}

// InitSQLDatabase return postgres db read & write instance from environment:
// SQL_DB_READ_DSN, SQL_DB_WRITE_DSN
// if want to create single connection, use SQL_DB_WRITE_DSN and set empty for SQL_DB_READ_DSN
func InitSQLDatabase() interfaces.SQLDatabase {
	defer logger.LogWithDefer("Load SQL connection...")()

	connReadDSN, connWriteDSN := env.BaseEnv().DbSQLReadDSN, env.BaseEnv().DbSQLWriteDSN
	if connReadDSN == "" {
		db := ConnectSQLDatabase(connWriteDSN)
		return &sqlInstance{read: db, write: db}
	}

	return &sqlInstance{
		read:  ConnectSQLDatabase(connReadDSN),
		write: ConnectSQLDatabase(connWriteDSN),
	}
}

// ConnectSQLDatabase connect to postgres with dsn
func ConnectSQLDatabase(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		panic(fmt.Sprintf("SQL Connection: %v", err))
	}
	if err = db.Ping(); err != nil {
		panic(fmt.Sprintf("SQL Ping: %v", err))
	}
	return db
}
