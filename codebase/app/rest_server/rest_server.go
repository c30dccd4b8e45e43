package restserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo"
	echoMidd "github.com/labstack/echo/middleware"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/codebase/factory"
	"github.com/golangid/wedding-collab/codebase/factory/types"
	"github.com/golangid/wedding-collab/logger"
	"github.com/golangid/wedding-collab/tracer"
	"github.com/golangid/wedding-collab/wrapper"
)

type restServer struct {
	opt          option
	serverEngine *echo.Echo
	service      factory.ServiceFactory
}

// NewServer create new REST server with echo engine, all module handler mounted in root path
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		opt:          getDefaultOption(),
		serverEngine: echo.New(),
		service:      service,
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	server.serverEngine.Use(echoMidd.Recover(), echoMidd.CORS())
	server.serverEngine.Use(server.opt.rootMiddlewares...)

	server.serverEngine.GET("/", func(c echo.Context) error {
		return wrapper.NewHTTPResponse(http.StatusOK, fmt.Sprintf("Service %s up and running", service.Name()),
			map[string]string{"timestamp": time.Now().Format(time.RFC3339Nano)},
		).JSON(c.Response())
	})

	rootMiddlewares := []echo.MiddlewareFunc{tracer.EchoRestTracerMiddleware}
	if server.opt.debugMode {
		rootMiddlewares = append(rootMiddlewares, echoMidd.Logger())
	}
	restRootPath := server.serverEngine.Group(server.opt.rootPath, rootMiddlewares...)
	for _, m := range service.GetModules() {
		if h := m.RESTHandler(); h != nil {
			h.Mount(restRootPath)
		}
	}

	var routes strings.Builder
	httpRoutes := server.serverEngine.Routes()
	sort.Slice(httpRoutes, func(i, j int) bool {
		return httpRoutes[i].Path < httpRoutes[j].Path
	})
	for _, route := range httpRoutes {
		if !strings.Contains(route.Name, "(*Group)") && route.Path != "/" {
			routes.WriteString(candihelper.StringGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-50s --> %s\n", route.Method, route.Path, route.Name)))
		}
	}
	fmt.Print(routes.String())

	server.serverEngine.HideBanner = true
	server.serverEngine.HidePort = true
	return server
}

// Handler return http handler, used for testing without listening port
func (s *restServer) Handler() http.Handler {
	return s.serverEngine
}

func (s *restServer) Serve() {
	port := fmt.Sprintf(":%d", s.opt.httpPort)
	fmt.Printf("\x1b[34;1m⇨ REST server run at port [::]%s\x1b[0m\n\n", port)
	if err := s.serverEngine.Start(port); err != nil {
		switch e := err.(type) {
		case *net.OpError:
			panic(e)
		}
	}
}

func (s *restServer) Shutdown(ctx context.Context) {
	defer logger.LogWithDefer("Stopping REST HTTP server...")()

	if err := s.serverEngine.Shutdown(ctx); err != nil {
		panic(err)
	}
}

func (s *restServer) Name() string {
	return string(types.REST)
}
