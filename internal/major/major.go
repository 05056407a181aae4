// Package major holds the static per-major requirement definitions and
// computes a student's progress against them.
//
// Definitions are configuration, not state: there is no mutation API, and
// adding a major means adding a table entry in seed.go. All progress
// computations are pure functions over a definition, a completed-course
// set, and a catalog snapshot supplied by the caller.
package major

import (
	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/pattern"
)

// CoreCourse is a single required course in a major's core sequence.
type CoreCourse struct {
	Code             string
	Name             string
	SemestersOffered []catalog.Semester
	Prereq           catalog.PrereqExpr

	// AdditionalRequirements lists course codes that are informationally
	// required alongside this course but not mechanically checked.
	AdditionalRequirements []string

	// External marks a course that lives in the external course table
	// rather than the main catalog.
	External bool

	Notes string
}

// SubstituteCourse is a specific course explicitly allowed to count
// toward the elective quota despite not matching the elective pattern.
type SubstituteCourse struct {
	Code             string
	Name             string
	External         bool
	SemestersOffered []catalog.Semester
	Prereq           catalog.PrereqExpr
}

// Substitutions is a major's elective substitution policy.
type Substitutions struct {
	Allowed  bool
	MaxCount int
	Courses  []SubstituteCourse
}

// ElectiveRule is a quota of courses matching a code pattern.
type ElectiveRule struct {
	Description   string
	Count         int
	Pattern       pattern.Pattern
	Substitutions Substitutions
}

// Definition is the full structured requirement set for one major.
type Definition struct {
	Name                 string
	TotalCoursesRequired int
	TotalCreditsRequired int
	MinGPA               float64
	MinGrade             string

	CoreDescription string
	Core            []CoreCourse

	Electives ElectiveRule

	Notes []string
}
