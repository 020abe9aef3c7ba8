// Package server exposes the interview-prep service and session storage
// over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/prepai/internal/interviewprep"
	"github.com/abhisek/prepai/internal/normalize"
	"github.com/abhisek/prepai/internal/store"
)

// Generator is the model-backed part of the API. *interviewprep.Service
// satisfies it.
type Generator interface {
	GenerateQuestions(ctx context.Context, in interviewprep.QuestionsInput) ([]normalize.QuestionAnswer, error)
	ExplainConcept(ctx context.Context, question string) (normalize.ConceptExplanation, error)
}

// Deps are the collaborators a Server needs.
type Deps struct {
	Prep      Generator
	Sessions  store.SessionRepo
	Questions store.QuestionRepo
	Logger    *zap.Logger
}

type Server struct {
	prep      Generator
	sessions  store.SessionRepo
	questions store.QuestionRepo
	logger    *zap.Logger
}

func New(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		prep:      d.Prep,
		sessions:  d.Sessions,
		questions: d.Questions,
		logger:    logger,
	}
}

// SetupRouter registers every route on a new gin engine.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", requireUser())

	ai := api.Group("/ai")
	ai.POST("/generate-questions", s.GenerateQuestions)
	ai.POST("/generate-explanation", s.GenerateExplanation)

	sessions := api.Group("/sessions")
	sessions.POST("/create", s.CreateSession)
	sessions.GET("/my-sessions", s.MySessions)
	sessions.GET("/:id", s.GetSession)
	sessions.DELETE("/:id", s.DeleteSession)

	questions := api.Group("/questions")
	questions.POST("/add", s.AddQuestions)
	questions.PUT("/:id/note", s.UpdateNote)
	questions.PUT("/:id/pin", s.TogglePin)
	questions.GET("/session/:sessionId", s.SessionQuestions)

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
