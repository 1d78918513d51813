// Package server assembles the HTTP server: the root and api router
// trees, the middleware chain, and the built-in health and route map
// endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/avroutemap/internal/config"
	"github.com/vyrodovalexey/avroutemap/internal/middleware"
	"github.com/vyrodovalexey/avroutemap/internal/router"
	"github.com/vyrodovalexey/avroutemap/internal/status"
)

// ginModeOnce ensures gin mode is set only once.
var ginModeOnce sync.Once

// Server is the HTTP server hosting the root and api router trees.
type Server struct {
	config     *config.Config
	logger     *zap.Logger
	engine     *gin.Engine
	httpServer *http.Server
	root       *router.Node
	api        *router.Node
	mu         sync.RWMutex
	running    bool
}

// New creates a server from the given configuration. The root tree is
// bound to the gin engine; the api tree is grafted under cfg.URL.
// Unmatched requests are answered by the tree whose prefix they fall
// under.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	ginModeOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
	})

	engine := gin.New()
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger:    logger,
		SkipPaths: []string{"/health"},
	}))
	engine.Use(middleware.Metrics())
	if cfg.TracingEnabled {
		engine.Use(middleware.Tracing(cfg.ServiceName))
	}
	engine.Use(middleware.Normalize())
	engine.Use(middleware.ErrorsWithConfig(middleware.ErrorsConfig{
		Logger:   logger,
		LogStack: cfg.LogStack(),
	}))

	root := router.NewTreeWithEngine("", engine)
	api := root
	for _, segment := range strings.Split(strings.Trim(cfg.URL, "/"), "/") {
		if segment == "" {
			continue
		}
		api = api.Child(segment)
	}

	engine.NoRoute(middleware.NotFoundDispatch(
		cfg.URL,
		middleware.NotFound(middleware.TreeAPI, logger),
		middleware.NotFound(middleware.TreeRoot, logger),
	))

	s := &Server{
		config: cfg,
		logger: logger,
		engine: engine,
		root:   root,
		api:    api,
	}
	s.registerBuiltins()

	return s
}

// registerBuiltins adds the endpoints every deployment gets.
func (s *Server) registerBuiltins() {
	s.root.GET("/health", s.handleHealth)
	s.api.GET("/routemap", RouteMapHandler(s.api))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(status.Success(http.MethodGet), gin.H{"status": "ok"})
}

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Root returns the top node of the root tree.
func (s *Server) Root() *router.Node {
	return s.root
}

// API returns the top node of the api tree.
func (s *Server) API() *router.Node {
	return s.api
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}

	s.httpServer = &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout.Duration(),
		WriteTimeout: s.config.WriteTimeout.Duration(),
		IdleTimeout:  s.config.IdleTimeout.Duration(),
	}

	s.running = true
	s.mu.Unlock()

	s.logger.Info("starting HTTP server",
		zap.String("address", s.config.Addr()),
		zap.String("apiPrefix", s.config.URL),
	)

	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop stops the HTTP server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.logger.Info("stopping HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("HTTP server stopped")
	return nil
}

// IsRunning returns whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
