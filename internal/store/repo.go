package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller does not own the row.
	ErrForbidden = errors.New("forbidden")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = any)
}

// Session is a saved interview-prep session owned by one user.
type Session struct {
	ID            string     `json:"id" yaml:"id"`
	UserID        string     `json:"userId" yaml:"user_id"`
	Role          string     `json:"role" yaml:"role"`
	Experience    string     `json:"experience" yaml:"experience"`
	TopicsToFocus string     `json:"topicsToFocus" yaml:"topics_to_focus"`
	Description   string     `json:"description" yaml:"description"`
	Questions     []Question `json:"questions" yaml:"questions"`
	CreatedAt     time.Time  `json:"createdAt" yaml:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" yaml:"updated_at"`
}

// Question is one question/answer record attached to a session.
type Question struct {
	ID        string    `json:"id" yaml:"id"`
	SessionID string    `json:"sessionId" yaml:"session_id"`
	Position  int       `json:"position" yaml:"position"`
	Question  string    `json:"question" yaml:"question"`
	Answer    string    `json:"answer" yaml:"answer"`
	Note      string    `json:"note" yaml:"note"`
	IsPinned  bool      `json:"isPinned" yaml:"is_pinned"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}

// NewSession carries the fields needed to create a session.
type NewSession struct {
	UserID        string
	Role          string
	Experience    string
	TopicsToFocus string
	Description   string
}

// NewQuestion carries the fields needed to attach a question.
type NewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Note     string `json:"note"`
	IsPinned bool   `json:"isPinned"`
}

// SessionRepo manages sessions and the questions created with them.
type SessionRepo interface {
	// Create stores a session and its initial questions in one transaction.
	Create(ctx context.Context, s NewSession, questions []NewQuestion) (*Session, error)

	// ListByUser returns the user's sessions, newest first, with questions.
	ListByUser(ctx context.Context, userID string) ([]Session, error)

	// Get returns a session with its questions, pinned first, then by
	// position. ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session and its questions. ErrNotFound if it does not
	// exist, ErrForbidden if userID is not the owner.
	Delete(ctx context.Context, id, userID string) error
}

// QuestionRepo manages individual questions.
type QuestionRepo interface {
	// Add appends questions to an existing session. ErrNotFound if the
	// session does not exist.
	Add(ctx context.Context, sessionID string, questions []NewQuestion) ([]Question, error)

	// UpdateNote replaces the question's note.
	UpdateNote(ctx context.Context, id, note string) (*Question, error)

	// TogglePin flips the question's pinned flag.
	TogglePin(ctx context.Context, id string) (*Question, error)

	// ListBySession returns a session's questions, pinned first, then by
	// position.
	ListBySession(ctx context.Context, sessionID string) ([]Question, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
