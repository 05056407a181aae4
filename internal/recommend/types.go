// Package recommend generates LLM-backed course recommendations for a
// target semester, grounded in the student's profile, major progress,
// and the eligibility-filtered catalog.
package recommend

import (
	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/student"
)

// Input carries everything a recommendation request needs. Courses is
// the full catalog snapshot; eligibility filtering happens inside the
// service.
type Input struct {
	Student       student.Snapshot
	Semester      string
	CareerPath    string
	SideInterests []string
	Courses       []catalog.Course
}

// Course is one recommended course with the model's reasoning.
type Course struct {
	Code      string `json:"course_code"`
	Title     string `json:"title"`
	Credits   int    `json:"credits"`
	Reasoning string `json:"reasoning"`
}

// Config bounds the generation request. TargetCreditsMin and
// TargetCreditsMax shape the instructions, not the validation; the
// model decides the final mix.
type Config struct {
	MaxTokens        int
	Temperature      float64
	TargetCreditsMin int
	TargetCreditsMax int
}

// DefaultConfig returns the standard generation settings. Temperature
// is raised above zero so repeated requests vary the mix.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        2048,
		Temperature:      0.7,
		TargetCreditsMin: 16,
		TargetCreditsMax: 24,
	}
}

func (c Config) minCredits() int {
	if c.TargetCreditsMin > 0 {
		return c.TargetCreditsMin
	}
	return 16
}

func (c Config) maxCredits() int {
	if c.TargetCreditsMax > 0 {
		return c.TargetCreditsMax
	}
	return 24
}
