// Package student defines the student profile snapshot the engine
// operates on. A snapshot is read from the store once per evaluation;
// the engine never mutates it.
package student

import (
	"strings"

	"github.com/apatel/gradpath/internal/planner"
)

// Snapshot is a student profile at a point in time.
type Snapshot struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	NetID            string                 `json:"netid"`
	Email            string                 `json:"email"`
	Year             string                 `json:"year"`
	Major            string                 `json:"major"`
	Interests        []string               `json:"interests"`
	CompletedCourses []string               `json:"completed_courses"`
	PlannedSemesters []planner.SemesterPlan `json:"planned_semesters"`
}

// NetIDFromEmail derives the institutional short id from an email
// address.
func NetIDFromEmail(email string) string {
	id, _, _ := strings.Cut(email, "@")
	return id
}

// CompletedSet returns the completed courses as a membership set.
func (s *Snapshot) CompletedSet() map[string]bool {
	m := make(map[string]bool, len(s.CompletedCourses))
	for _, c := range s.CompletedCourses {
		m[c] = true
	}
	return m
}

// CompletedWithPlanned returns the completed set extended with courses
// planned for semesters before the target. Those are treated as done for
// prerequisite purposes when evaluating a future semester.
func (s *Snapshot) CompletedWithPlanned(targetSemester string) map[string]bool {
	m := s.CompletedSet()
	target := planner.SemesterIndex(targetSemester)
	for _, p := range s.PlannedSemesters {
		if p.Index >= target {
			continue
		}
		for _, c := range p.Courses {
			m[c.Code] = true
		}
	}
	return m
}

// PlannedCodes returns the codes planned for the given semester.
func (s *Snapshot) PlannedCodes(semester string) []string {
	return planner.Codes(s.PlannedSemesters, semester)
}
