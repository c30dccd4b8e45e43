package config

import (
	"context"
	"fmt"
	"log"

	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
	"github.com/golangid/wedding-collab/logger"
)

// Config app
type Config struct {
	closers []interfaces.Closer
}

// Init app config
func Init(serviceName string) *Config {
	env.Load(serviceName)
	logger.SetDebugMode(env.BaseEnv().DebugMode)
	return &Config{}
}

// LoadFunc load selected dependency with context timeout, panic when timeout or when dependency failed to connect
func (c *Config) LoadFunc(depsFunc func(context.Context) []interfaces.Closer) {
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	closersChan := make(chan []interfaces.Closer)
	errConnect := make(chan interface{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errConnect <- r
			}
			close(closersChan)
			close(errConnect)
		}()

		closersChan <- depsFunc(ctx)
	}()

	// with timeout to init configuration
	select {
	case closers := <-closersChan:
		c.closers = closers
	case <-ctx.Done():
		panic(fmt.Errorf("Timeout to load selected dependencies: %v", ctx.Err()))
	case e := <-errConnect:
		panic(fmt.Errorf("Failed to load selected dependencies: %v", e))
	}
}

// RegisterCloser register closer released before the loaded dependencies
func (c *Config) RegisterCloser(closers ...interfaces.Closer) {
	c.closers = append(closers, c.closers...)
}

// Exit release all connection, think as deferred function in main
func (c *Config) Exit() {
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		logger.LogIfError(cl.Disconnect(ctx))
	}
	log.Println("\x1b[33;1mConfig: Success close all connection\x1b[0m")
}
