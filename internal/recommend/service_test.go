package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/llm"
	"github.com/apatel/gradpath/internal/planner"
	"github.com/apatel/gradpath/internal/student"
)

func testCatalog() []catalog.Course {
	fs := []catalog.Semester{catalog.Fall, catalog.Spring}
	return []catalog.Course{
		{
			Code:             "CSCI-UA.0101",
			Title:            "Introduction to Computer Science",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       2,
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0102",
			Title:            "Data Structures",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       3,
			Prereq:           catalog.AnyOf("CSCI-UA.0101"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0201",
			Title:            "Computer Systems Organization",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       3,
			Prereq:           catalog.AnyOf("CSCI-UA.0102"),
			SemestersOffered: fs,
		},
	}
}

func testStudent() student.Snapshot {
	return student.Snapshot{
		Name:             "Alice Example",
		Email:            "alice@nyu.edu",
		Year:             "Sophomore",
		Major:            "Computer Science",
		Interests:        []string{"AI"},
		CompletedCourses: []string{"CSCI-UA.0101"},
	}
}

func cannedRecommendation(codes ...string) llm.MockResponse {
	var courses []map[string]any
	for _, code := range codes {
		courses = append(courses, map[string]any{
			"course_code": code,
			"title":       "Some Course",
			"credits":     4,
			"reasoning":   "builds on completed work",
		})
	}
	raw, _ := json.Marshal(map[string]any{"courses": courses})
	return llm.MockResponse{
		Content: raw,
		Usage:   llm.Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestRecommend(t *testing.T) {
	mock := llm.NewMockProvider(cannedRecommendation("CSCI-UA.0102"))
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Recommend(context.Background(), Input{
		Student:    testStudent(),
		Semester:   "Sophomore Fall",
		CareerPath: "Software Engineering",
		Courses:    testCatalog(),
	})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(got) != 1 || got[0].Code != "CSCI-UA.0102" {
		t.Fatalf("recommendations = %+v", got)
	}
	if got[0].Reasoning == "" {
		t.Error("reasoning missing")
	}
}

func TestRecommendRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(cannedRecommendation("CSCI-UA.0102"))
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Recommend(context.Background(), Input{
		Student:       testStudent(),
		Semester:      "Sophomore Fall",
		CareerPath:    "Machine Learning",
		SideInterests: []string{"Linguistics"},
		Courses:       testCatalog(),
	})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]

	if req.Schema == nil || req.Schema.Name != "course-recommendation" {
		t.Errorf("schema = %+v", req.Schema)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
	if !strings.Contains(req.System, "academic advisor") {
		t.Error("system prompt missing advisor role")
	}

	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"MAJOR: Computer Science",
		"Career Path: Machine Learning",
		"Side Interests: Linguistics",
		"Completed Courses: CSCI-UA.0101",
		"MAJOR PROGRESS:",
		"REMAINING CORE REQUIREMENTS:",
		"CSCI-UA.0102: Data Structures",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}

	// A course with unmet prerequisites may appear as a remaining core
	// requirement, but never in the available courses list. Only the
	// available list carries the prerequisite line.
	if strings.Contains(msg, "Prerequisites: CSCI-UA.0102") {
		t.Error("available courses list includes a course with unmet prerequisites")
	}
}

func TestRecommendExcludesPlannedForTargetSemester(t *testing.T) {
	snap := testStudent()
	snap.PlannedSemesters = planner.Upsert(nil, "Sophomore Fall", []string{
		"CSCI-UA.0102 Data Structures (4 credits)",
	})

	mock := llm.NewMockProvider(cannedRecommendation("CSCI-UA.0102"))
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Recommend(context.Background(), Input{
		Student:  snap,
		Semester: "Sophomore Fall",
		Courses:  testCatalog(),
	})
	if !errors.Is(err, ErrNoRecommendations) {
		t.Fatalf("err = %v, want ErrNoRecommendations", err)
	}
}

func TestRecommendDropsCompletedAndEmptyCodes(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"courses": []map[string]any{
		{"course_code": "CSCI-UA.0101", "title": "Intro", "credits": 4, "reasoning": "already done"},
		{"course_code": "  ", "title": "Blank", "credits": 4, "reasoning": "no code"},
		{"course_code": "CSCI-UA.0102", "title": "Data Structures", "credits": 4, "reasoning": "next step"},
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Recommend(context.Background(), Input{
		Student:  testStudent(),
		Semester: "Sophomore Fall",
		Courses:  testCatalog(),
	})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(got) != 1 || got[0].Code != "CSCI-UA.0102" {
		t.Fatalf("recommendations = %+v", got)
	}
}

func TestRecommendProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Recommend(context.Background(), Input{
		Student:  testStudent(),
		Semester: "Sophomore Fall",
		Courses:  testCatalog(),
	})
	if err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestRecommendRequiresSemester(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	_, err := svc.Recommend(context.Background(), Input{Student: testStudent(), Courses: testCatalog()})
	if err == nil {
		t.Fatal("expected error for missing semester")
	}
}

func TestRecommendNoEligibleCourses(t *testing.T) {
	snap := testStudent()
	snap.Major = "" // no external augmentation either
	snap.CompletedCourses = []string{"CSCI-UA.0101", "CSCI-UA.0102", "CSCI-UA.0201"}

	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	_, err := svc.Recommend(context.Background(), Input{
		Student:  snap,
		Semester: "Junior Fall",
		Courses:  testCatalog(),
	})
	if err == nil {
		t.Fatal("expected error when nothing is eligible")
	}
}
