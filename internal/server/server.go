// Package server is an in-memory reference backend for the date night ideas
// REST contract. It backs `datenight serve` and the client tests.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Makepad-fr/datenight/internal/model"
)

// BasePath is the route prefix every endpoint lives under.
const BasePath = "/api/date-night-ideas"

// Response texts for endpoints that answer with plain text.
const (
	ResetMessage   = "All ideas have been reset successfully"
	UpdatedMessage = "Date night idea has been successfully updated"
	DeletedMessage = "Date night idea has been successfully deleted"
)

// Server serves a Store over HTTP.
type Server struct {
	store  *Store
	log    *slog.Logger
	engine *gin.Engine
}

// New builds the gin engine for store.
func New(store *Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{store: store, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery())
	s.engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	s.engine.Use(s.requestLogger())

	g := s.engine.Group(BasePath)
	g.GET("/allIdeas", s.allIdeas)
	g.GET("/random/:budget", s.randomIdea)
	g.POST("/addIdea", s.addIdea)
	g.PUT("/updateIdea/:id", s.updateIdea)
	g.DELETE("/deleteIdea/:id", s.deleteIdea)
	g.POST("/reset", s.reset)

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("reference backend listening", "addr", addr, "base_path", BasePath)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down reference backend")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetHeader("X-Request-ID"),
		)
	}
}

func (s *Server) allIdeas(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.All())
}

func (s *Server) randomIdea(c *gin.Context) {
	idea, ok := s.store.Random(c.Param("budget"))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, idea)
}

func (s *Server) addIdea(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, s.store.Create(in))
}

func (s *Server) updateIdea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}
	if !s.store.Update(id, in) {
		c.String(http.StatusNotFound, "Date night idea not found")
		return
	}
	c.String(http.StatusOK, UpdatedMessage)
}

func (s *Server) deleteIdea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !s.store.Delete(id) {
		c.String(http.StatusNotFound, "Date night idea not found")
		return
	}
	c.String(http.StatusOK, DeletedMessage)
}

func (s *Server) reset(c *gin.Context) {
	s.store.ResetSuggested()
	c.String(http.StatusOK, ResetMessage)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func bindInput(c *gin.Context) (model.IdeaInput, bool) {
	var in model.IdeaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid idea: "+err.Error())
		return in, false
	}
	if strings.TrimSpace(in.Title) == "" {
		c.String(http.StatusBadRequest, "title is required")
		return in, false
	}
	return in, true
}
