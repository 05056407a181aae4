package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/apatel/gradpath/internal/eligibility"
	"github.com/apatel/gradpath/internal/llm"
	"github.com/apatel/gradpath/internal/major"
)

// ErrNoRecommendations is returned when the model produced output but
// every recommended course was filtered out during validation.
var ErrNoRecommendations = errors.New("model returned no usable recommendations")

// Service generates course recommendations through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a recommendation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// recommendationPayload is the wire shape of the model response.
type recommendationPayload struct {
	Courses []Course `json:"courses"`
}

// Recommend produces recommended courses for the target semester.
//
// The candidate pool is the eligibility-filtered catalog, with courses
// already planned for the target semester excluded on top of the
// completed set. Major progress and remaining requirements are computed
// from the actual completed set so the prompt reports true standing.
// Recommendations naming excluded or empty course codes are dropped
// from the result.
func (s *Service) Recommend(ctx context.Context, in Input) ([]Course, error) {
	if strings.TrimSpace(in.Semester) == "" {
		return nil, errors.New("target semester is required")
	}

	completed := in.Student.CompletedSet()

	excluded := make(map[string]bool, len(completed))
	for code := range completed {
		excluded[code] = true
	}
	for _, code := range in.Student.PlannedCodes(in.Semester) {
		excluded[code] = true
	}

	available := eligibility.AvailableCourses(excluded, in.Semester, in.Courses, in.Student.Major)
	if len(available) == 0 {
		return nil, fmt.Errorf("no eligible courses for %s", in.Semester)
	}

	var progress *major.Progress
	var remaining *major.Remaining
	if p, ok := major.ComputeProgress(in.Student.Major, completed, in.Courses); ok {
		progress = &p
	}
	if r, ok := major.ComputeRemaining(in.Student.Major, completed, in.Courses); ok {
		remaining = &r
	}

	ctx = llm.WithPurpose(ctx, "recommendation")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in, available, progress, remaining, s.cfg)},
		},
		Schema:      RecommendationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	var payload recommendationPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}

	// The model occasionally echoes a completed or planned course back
	// despite the constraints. Drop those instead of failing the request.
	out := make([]Course, 0, len(payload.Courses))
	for _, c := range payload.Courses {
		code := strings.TrimSpace(c.Code)
		if code == "" || excluded[code] {
			continue
		}
		c.Code = code
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, ErrNoRecommendations
	}
	return out, nil
}
