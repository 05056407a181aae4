package catalog

import "strings"

// Semester is an academic term a course may be offered in.
type Semester string

const (
	Fall         Semester = "Fall"
	Spring       Semester = "Spring"
	Summer       Semester = "Summer"
	Occasionally Semester = "Occasionally"
)

// ExtractTerm pulls the term out of a semester label such as
// "Freshman Fall" or "Sophomore Spring". Matching is a case-insensitive
// substring search, checked in Fall, Spring, Summer priority order.
// Returns false when the label names no term; callers treat that as a
// pass-through rather than an error.
func ExtractTerm(label string) (Semester, bool) {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "fall"):
		return Fall, true
	case strings.Contains(lower, "spring"):
		return Spring, true
	case strings.Contains(lower, "summer"):
		return Summer, true
	}
	return "", false
}
