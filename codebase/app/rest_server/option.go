package restserver

import (
	"strings"

	"github.com/labstack/echo"
)

type (
	option struct {
		rootMiddlewares []echo.MiddlewareFunc
		httpPort        uint16
		rootPath        string
		debugMode       bool
	}

	// OptionFunc type
	OptionFunc func(*option)
)

func getDefaultOption() option {
	return option{
		httpPort:  8000,
		rootPath:  "",
		debugMode: true,
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootPath option func
func SetRootPath(rootPath string) OptionFunc {
	return func(o *option) {
		rootPath = strings.Trim(rootPath, "/")
		if rootPath != "" {
			rootPath = "/" + rootPath
		}
		o.rootPath = rootPath
	}
}

// SetDebugMode option func, print http access log when debug mode is active
func SetDebugMode(debugMode bool) OptionFunc {
	return func(o *option) {
		o.debugMode = debugMode
	}
}

// AddRootMiddlewares option func
func AddRootMiddlewares(middlewares ...echo.MiddlewareFunc) OptionFunc {
	return func(o *option) {
		o.rootMiddlewares = append(o.rootMiddlewares, middlewares...)
	}
}
