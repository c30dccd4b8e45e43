package main

import (
	"fmt"
	"runtime/debug"

	"github.com/golangid/wedding-collab/codebase/app"
	"github.com/golangid/wedding-collab/config"

	service "github.com/golangid/wedding-collab/internal"
)

func main() {
	const serviceName = "wedding-collab"

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mFailed to start %s service: %v\x1b[0m\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	cfg := config.Init(serviceName)
	defer cfg.Exit()

	app.New(service.NewService(cfg)).Run()
}
