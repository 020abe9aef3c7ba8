package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/prepai/internal/interviewprep"
	"github.com/abhisek/prepai/internal/normalize"
)

// pipelineMessages are the client-facing messages for batch pipeline
// failures, keyed by normalize kind.
var pipelineMessages = map[string]string{
	normalize.KindExtraction:  "Invalid JSON format returned by AI",
	normalize.KindParse:       "Failed to parse AI response",
	normalize.KindEmptyResult: "No valid questions generated",
}

func (s *Server) GenerateQuestions(c *gin.Context) {
	var in interviewprep.QuestionsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field(s)"})
		return
	}

	records, err := s.prep.GenerateQuestions(c.Request.Context(), in)
	if err != nil {
		s.aiError(c, err, "Failed to generate questions")
		return
	}
	c.JSON(http.StatusOK, records)
}

type explanationRequest struct {
	Question string `json:"question"`
}

func (s *Server) GenerateExplanation(c *gin.Context) {
	var req explanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid question is required"})
		return
	}

	rec, err := s.prep.ExplainConcept(c.Request.Context(), req.Question)
	if err != nil {
		s.aiError(c, err, "Failed to generate explanation")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) aiError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var invalid *interviewprep.ErrInvalidInput
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": invalid.Message, "fields": invalid.Fields})
	case normalize.KindOf(err) != "":
		kind := normalize.KindOf(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": pipelineMessages[kind], "kind": kind})
	case errors.Is(err, interviewprep.ErrNoResponse):
		c.JSON(http.StatusBadGateway, gin.H{"message": "Invalid response from AI service"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"message": fallback, "error": err.Error()})
	}
}
