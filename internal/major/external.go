package major

import (
	"strings"

	"github.com/apatel/gradpath/internal/catalog"
)

// externalCourses maps course codes referenced by requirement rules but
// absent from the main catalog store to their titles. Currently all math
// department offerings.
var externalCourses = map[string]string{
	"MATH-UA.0009": "Precalculus",
	"MATH-UA.0120": "Discrete Mathematics",
	"MATH-UA.0121": "Calculus I",
	"MATH-UA.0122": "Calculus II",
	"MATH-UA.0131": "Math for Economics I",
	"MATH-UA.0140": "Linear Algebra",
	"MATH-UA.0185": "Probability and Statistics",
}

// IsExternal reports whether a code belongs to the external course table.
func IsExternal(code string) bool {
	_, ok := externalCourses[code]
	return ok
}

// ExternalCourse synthesizes a normalized catalog record for an external
// course. Fields default to 4 credits, unrated difficulty, and empty
// prerequisites, semesters, and description; the requirement rule that
// referenced the course overrides those as needed.
func ExternalCourse(code string) (catalog.Course, bool) {
	title, ok := externalCourses[code]
	if !ok {
		return catalog.Course{}, false
	}
	return catalog.Course{
		Code:    code,
		Title:   title,
		Subject: subjectOf(code),
		Credits: catalog.CreditsOf(4),
	}, true
}

// subjectOf extracts the subject prefix from a course code.
func subjectOf(code string) string {
	if i := strings.LastIndex(code, "."); i > 0 {
		return code[:i]
	}
	return ""
}
