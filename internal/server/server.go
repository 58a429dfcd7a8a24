// Package server exposes one room editor over HTTP. Every command runs under
// a single lock, so requests apply one at a time in arrival order.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ChicagoDave/roomplanner/pkg/scene2d"
	"github.com/ChicagoDave/roomplanner/pkg/session"
)

const (
	mimeMsgpack     = "application/msgpack"
	shutdownTimeout = 5 * time.Second
)

// Config holds server settings.
type Config struct {
	Port        int
	ProjectPath string
	Logger      *slog.Logger
}

// Server is the local editing server for one room.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
	echo    *echo.Echo

	mu     sync.Mutex
	editor *session.Editor
}

// New creates a server around an editor.
func New(editor *session.Editor, cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s := &Server{
		cfg:     cfg,
		log:     cfg.Logger,
		metrics: NewMetrics(),
		editor:  editor,
	}
	s.echo = s.routes()
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(s.metrics.Middleware)

	e.GET("/", s.handleIndex)
	e.GET("/metrics", s.metrics.Handler())

	api := e.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/scene", s.handleScene)
	api.GET("/validation", s.handleValidation)

	api.PUT("/room", s.handleSetRoom)

	api.POST("/polygon/vertices/:index", s.handleMoveVertex)
	api.POST("/polygon/vertices/:index/insert", s.handleInsertVertex)
	api.DELETE("/polygon/vertices/:index", s.handleRemoveVertex)
	api.POST("/polygon/reset", s.handleResetPolygon)

	api.PUT("/door", s.handleDragDoor)

	api.PUT("/racks/params", s.handleRackParams)
	api.PUT("/racks/snap", s.handleRackSnap)
	api.POST("/racks/reset", s.handleResetRacks)
	api.POST("/racks/:index/drag", s.handleDragRack)

	api.POST("/drop", s.handleDrop)
	api.POST("/ac/:id/drag", s.handleDragAC)
	api.PUT("/ac/:id/size", s.handleResizeAC)
	api.DELETE("/ac/:id", s.handleDeleteAC)
	api.POST("/ac/:id/select", s.handleSelectAC)

	api.GET("/export/:format", s.handleExport)
	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info("roomplanner server starting", "url", "http://localhost"+addr, "project", s.cfg.ProjectPath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("roomplanner server stopping")
	return s.echo.Shutdown(shutdownCtx)
}

// do runs fn with the editor locked.
func (s *Server) do(fn func(*session.Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// snapshot assembles the current scene.
func (s *Server) snapshot() *scene2d.Scene2D {
	s.mu.Lock()
	st := s.editor.State()
	s.mu.Unlock()
	return scene2d.Assemble2D(st)
}

// respond writes v as msgpack when the client asks for it and as JSON
// otherwise.
func respond(c echo.Context, status int, v any) error {
	if !strings.Contains(c.Request().Header.Get(echo.HeaderAccept), mimeMsgpack) {
		return c.JSON(status, v)
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding msgpack: %w", err)
	}
	return c.Blob(status, mimeMsgpack, buf.Bytes())
}
