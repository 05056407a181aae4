package store

import (
	"context"
	"time"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/planner"
	"github.com/apatel/gradpath/internal/student"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CourseRepo provides access to the course catalog.
type CourseRepo interface {
	// All returns the full catalog ordered by course code.
	All(ctx context.Context) ([]catalog.Course, error)

	// Get returns a single course by code, or nil when absent.
	Get(ctx context.Context, code string) (*catalog.Course, error)

	// ReplaceAll swaps the entire catalog for the given records.
	ReplaceAll(ctx context.Context, courses []catalog.Course) error

	// Count returns the number of catalog records.
	Count(ctx context.Context) (int, error)
}

// StudentRepo provides access to student profiles.
type StudentRepo interface {
	// Get returns the profile for an email, or nil when absent.
	Get(ctx context.Context, email string) (*student.Snapshot, error)

	// Upsert creates or replaces the profile keyed by email.
	Upsert(ctx context.Context, snap *student.Snapshot) error

	// SetPlans replaces the semester plans for an email.
	SetPlans(ctx context.Context, email string, plans []planner.SemesterPlan) error
}

// LLMRequestEventData captures a single LLM request for the event log.
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

// LLMUsage aggregates request counts and token totals for one grouping
// key (a purpose label or a model ID).
type LLMUsage struct {
	Key          string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
