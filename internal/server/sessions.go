package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/prepai/internal/store"
)

type createSessionRequest struct {
	Role          string              `json:"role"`
	Experience    string              `json:"experience"`
	TopicsToFocus string              `json:"topicsToFocus"`
	Description   string              `json:"description"`
	Questions     []store.NewQuestion `json:"questions"`
}

func (s *Server) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if strings.TrimSpace(req.Role) == "" || strings.TrimSpace(req.Experience) == "" ||
		strings.TrimSpace(req.TopicsToFocus) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field(s)"})
		return
	}

	sess, err := s.sessions.Create(c.Request.Context(), store.NewSession{
		UserID:        userID(c),
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
	}, req.Questions)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess, "questions": sess.Questions})
}

func (s *Server) MySessions(c *gin.Context) {
	list, err := s.sessions.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		s.storeError(c, err)
		return
	}
	if list == nil {
		list = []store.Session{}
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) GetSession(c *gin.Context) {
	sess, err := s.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) DeleteSession(c *gin.Context) {
	if err := s.sessions.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully."})
}

type addQuestionsRequest struct {
	SessionID string              `json:"sessionId"`
	Questions []store.NewQuestion `json:"questions"`
}

func (s *Server) AddQuestions(c *gin.Context) {
	var req addQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Questions == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	added, err := s.questions.Add(c.Request.Context(), req.SessionID, req.Questions)
	if err != nil {
		s.storeError(c, err)
		return
	}

	sess, err := s.sessions.Get(c.Request.Context(), req.SessionID)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess, "questions": added})
}

type updateNoteRequest struct {
	Note string `json:"note"`
}

func (s *Server) UpdateNote(c *gin.Context) {
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	q, err := s.questions.UpdateNote(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Question successfully updated", "question": q})
}

func (s *Server) TogglePin(c *gin.Context) {
	q, err := s.questions.TogglePin(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "question": q})
}

func (s *Server) SessionQuestions(c *gin.Context) {
	qs, err := s.questions.ListBySession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, qs)
}

func (s *Server) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to modify this resource."})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
	}
}
