// Package compileserver is the gin-based HTTP front-end around the
// compiler core, generalizing the teacher's internal/app +
// internal/server/router stack (appServer wrapping a Router, routes
// registered via SetRoutes). It is explicitly an API-boundary wrapper,
// not part of the core (§1 PURPOSE & SCOPE: "public language/API
// bindings... treated as external collaborators") — it is the only
// package in this module that imports gin.
package compileserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openql-go/openql/internal/logger"
)

// EngineOptions mirrors the teacher's server.EngineOptions.
type EngineOptions struct {
	Debug bool
}

// Server is the public surface, mirroring the teacher's server.Server
// interface (Listen/Shutdown), so main() wiring looks the same.
type Server interface {
	Listen(port int, localOnly bool) error
	Shutdown(ctx context.Context) error
}

// compileServer is the concrete Server, the analogue of the teacher's
// appServer: it owns the logger and the gin engine, registers routes
// once at construction.
type compileServer struct {
	log     *logger.Logger
	engine  *gin.Engine
	httpSrv *http.Server
	version string
}

// Options configures NewServer, generalizing the teacher's
// ServerOptions (C *config.Config, Version string) — debug comes from
// internal/options.Registry.BoolOpt("debug") at the call site rather
// than a dangling config.Config.
type Options struct {
	Debug   bool
	Version string
}

// NewServer builds a Server with /health and /compile wired, the way
// the teacher's app.NewServer builds an appServer from
// server.NewLoggerAndRouter plus routes().
func NewServer(opts Options) Server {
	log := logger.NewLogger(logger.LoggerOptions{Debug: opts.Debug})

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	cs := &compileServer{log: log, engine: engine, version: opts.Version}
	cs.routes()
	return cs
}

func (s *compileServer) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/compile", s.handleCompile)
}

// Listen starts serving, localOnly binding to 127.0.0.1 only, matching
// the teacher's router.Start.
func (s *compileServer) Listen(port int, localOnly bool) error {
	addr := ""
	if localOnly {
		addr = "127.0.0.1"
	}
	s.httpSrv = &http.Server{Addr: fmt.Sprintf(addr+":%d", port), Handler: s.engine}
	s.log.Info().Int("port", port).Bool("localOnly", localOnly).Msg("starting compile server")
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server, mirroring the teacher's
// router.Shutdown/ErrNoServerToShutdown handling.
func (s *compileServer) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return errNoServerToShutdown{}
	}
	return s.httpSrv.Shutdown(ctx)
}

type errNoServerToShutdown struct{}

func (errNoServerToShutdown) Error() string { return "compileserver: no server to shut down" }
