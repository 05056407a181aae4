package store

import (
	"context"
	"testing"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/planner"
	"github.com/apatel/gradpath/internal/student"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCourseReplaceAllAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, SeedCourses()); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(SeedCourses()) {
		t.Errorf("count = %d, want %d", n, len(SeedCourses()))
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != n {
		t.Fatalf("all returned %d courses, want %d", len(all), n)
	}
	// Ordered by code, so the foundation course comes first.
	if all[0].Code != "CSCI-UA.0002" {
		t.Errorf("first course = %s, want CSCI-UA.0002", all[0].Code)
	}

	// Prerequisite expressions survive the round trip.
	ai, err := repo.Get(ctx, "CSCI-UA.0472")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ai == nil {
		t.Fatal("expected CSCI-UA.0472 to exist")
	}
	if ai.Prereq.Kind() != catalog.PrereqGroup || ai.Prereq.Logic() != catalog.LogicAnd {
		t.Errorf("prereq kind/logic = %v/%v, want group/and", ai.Prereq.Kind(), ai.Prereq.Logic())
	}
	if !ai.OfferedIn(catalog.Fall) || ai.OfferedIn(catalog.Spring) {
		t.Error("semester offerings did not round-trip")
	}

	// ReplaceAll swaps the catalog wholesale.
	if err := repo.ReplaceAll(ctx, SeedCourses()[:2]); err != nil {
		t.Fatalf("replace all (smaller): %v", err)
	}
	n, _ = repo.Count(ctx)
	if n != 2 {
		t.Errorf("count after replace = %d, want 2", n)
	}
}

func TestCourseGetMissing(t *testing.T) {
	s := openTestStore(t)
	c, err := s.CourseRepo().Get(context.Background(), "CSCI-UA.9999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil for missing course, got %+v", c)
	}
}

func TestStudentUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "nobody@nyu.edu")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing student")
	}

	snap := &student.Snapshot{
		Email:            "alice@nyu.edu",
		Name:             "Alice Example",
		Year:             "Freshman",
		Major:            "Computer Science",
		Interests:        []string{"AI"},
		CompletedCourses: []string{"CSCI-UA.0101"},
	}
	if err := repo.Upsert(ctx, snap); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "alice@nyu.edu")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected student")
	}
	if got.NetID != "alice" {
		t.Errorf("netid = %q, want derived 'alice'", got.NetID)
	}
	if len(got.CompletedCourses) != 1 || got.CompletedCourses[0] != "CSCI-UA.0101" {
		t.Errorf("completed = %v", got.CompletedCourses)
	}

	// Second upsert replaces fields instead of creating a duplicate.
	snap.Major = "Computer Science"
	snap.CompletedCourses = []string{"CSCI-UA.0101", "CSCI-UA.0102"}
	if err := repo.Upsert(ctx, snap); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, _ = repo.Get(ctx, "alice@nyu.edu")
	if len(got.CompletedCourses) != 2 {
		t.Errorf("completed after update = %v", got.CompletedCourses)
	}
}

func TestStudentSetPlans(t *testing.T) {
	s := openTestStore(t)
	repo := s.StudentRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, &student.Snapshot{Email: "bob@nyu.edu", Name: "Bob"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	plans := planner.Upsert(nil, "Freshman Fall", []string{
		"CSCI-UA.0101 Introduction to Computer Science (4 credits)",
	})
	if err := repo.SetPlans(ctx, "bob@nyu.edu", plans); err != nil {
		t.Fatalf("set plans: %v", err)
	}

	got, err := repo.Get(ctx, "bob@nyu.edu")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.PlannedSemesters) != 1 {
		t.Fatalf("plans = %d entries, want 1", len(got.PlannedSemesters))
	}
	if got.PlannedSemesters[0].Courses[0].Code != "CSCI-UA.0101" {
		t.Errorf("planned course = %+v", got.PlannedSemesters[0].Courses[0])
	}

	if err := repo.SetPlans(ctx, "missing@nyu.edu", plans); err == nil {
		t.Error("expected error for unknown student")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      "recommendation",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "recommendation" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "recommendation", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "recommendation", InputTokens: 20, OutputTokens: 10, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "other", InputTokens: 1, OutputTokens: 1, Success: false},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	found := false
	for _, u := range byPurpose {
		if u.Key == "recommendation" {
			found = true
			if u.Requests != 2 || u.InputTokens != 30 || u.OutputTokens != 15 {
				t.Errorf("recommendation usage = %+v", u)
			}
		}
	}
	if !found {
		t.Error("recommendation purpose missing from aggregation")
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("models = %d, want 2", len(byModel))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	prev := int64(0)
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not increasing (prev %d)", seq, prev)
		}
		prev = seq
	}
}

func TestSeed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := s.CourseRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(SeedCourses()) {
		t.Errorf("courses = %d, want %d", n, len(SeedCourses()))
	}

	bob, err := s.StudentRepo().Get(ctx, "student2@nyu.edu")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if bob == nil || bob.Name != "Bob Example" {
		t.Errorf("student2 = %+v", bob)
	}

	// Seeding twice must not fail or duplicate students.
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
}
