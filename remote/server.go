// Package remote exposes a running game over HTTP and WebSocket.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"torus-snake/controls"
	"torus-snake/game"
	"torus-snake/game/manager"
)

const shutdownTimeout = 5 * time.Second

// Session is what the remote surface needs from the game.
type Session interface {
	controls.Target
	Frame() game.Frame
	Stats() manager.GameStats
	Subscribe() (<-chan game.Frame, func())
}

// KeyHandler receives the direction and pause keys.
type KeyHandler interface {
	HandleKey(key string) bool
}

type Server struct {
	session  Session
	keys     KeyHandler
	logger   *slog.Logger
	engine   *gin.Engine
	upgrader websocket.Upgrader

	// done is closed on shutdown; open sockets watch it since
	// http.Server.Shutdown does not close hijacked connections.
	done     chan struct{}
	doneOnce sync.Once
}

type speedRequest struct {
	Speed int `json:"speed" binding:"required,min=60,max=300"`
}

type keyRequest struct {
	Key string `json:"key" binding:"required"`
}

func New(s Session, keys KeyHandler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	srv := &Server{
		session:  s,
		keys:     keys,
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		done:     make(chan struct{}),
	}

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())

	api := r.Group("/api")
	api.GET("/frame", srv.getFrame)
	api.GET("/stats", srv.getStats)
	api.POST("/pause", srv.postPause)
	api.POST("/restart", srv.postRestart)
	api.PUT("/speed", srv.putSpeed)
	api.POST("/key", srv.postKey)
	r.GET("/ws", srv.serveWS)

	srv.engine = r
	return srv
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("remote listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("remote shutdown: %w", err)
	}
	s.logger.Info("remote stopped")
	return nil
}

func (s *Server) close() {
	s.doneOnce.Do(func() { close(s.done) })
}

// requestLogger logs method, path, status, bytes and duration of each request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func (s *Server) getFrame(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Frame())
}

func (s *Server) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Stats())
}

func (s *Server) postPause(c *gin.Context) {
	controls.Apply(s.session, controls.ActionTogglePause)
	c.JSON(http.StatusOK, s.session.Frame())
}

func (s *Server) postRestart(c *gin.Context) {
	controls.Apply(s.session, controls.ActionRestart)
	c.JSON(http.StatusOK, s.session.Frame())
}

func (s *Server) putSpeed(c *gin.Context) {
	var req speedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.session.SetSpeed(req.Speed)
	c.JSON(http.StatusOK, s.session.Frame())
}

func (s *Server) postKey(c *gin.Context) {
	var req keyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	handled := s.handleKey(req.Key)
	c.JSON(http.StatusOK, gin.H{"handled": handled, "frame": s.session.Frame()})
}

// handleKey routes a key the same way the keyboard front ends do. Quit is
// ignored: a remote client cannot stop the process.
func (s *Server) handleKey(key string) bool {
	if s.keys.HandleKey(key) {
		return true
	}
	return controls.Apply(s.session, controls.KeyAction(key))
}
