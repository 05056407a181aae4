// Package planner manages per-semester course plans: the eight-semester
// timeline and the "CODE Title (N credits)" string format plans are
// exchanged in.
package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCredits is assumed when a course string omits a credit count.
const DefaultCredits = 4

// PlannedCourse is one course slotted into a semester plan.
type PlannedCourse struct {
	Code    string `json:"course_code"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
}

// SemesterPlan is the set of courses planned for one named semester.
type SemesterPlan struct {
	Semester string          `json:"semester"`
	Index    int             `json:"semester_index"`
	Courses  []PlannedCourse `json:"courses"`
}

var (
	// "CSCI-UA.0101 Introduction to Computer Science (4 credits)",
	// singular "credit" accepted.
	fullCoursePattern = regexp.MustCompile(`^([A-Z]+-UA\.?\d+)\s+(.+?)\s+\((\d+)\s+credits?\)$`)

	// "CSCI-UA.0101 Introduction to Computer Science" with an optional
	// bare "(4)" suffix.
	simpleCoursePattern = regexp.MustCompile(`^([A-Z]+-UA\.?\d+)\s+(.+?)(?:\s+\((\d+)\))?$`)
)

// ParseCourseString parses a display string like
// "CSCI-UA.0101 Introduction to Computer Science (4 credits)" into a
// structured course. When the credit suffix is absent the course gets
// DefaultCredits. Returns false for strings that carry no recognizable
// course code.
func ParseCourseString(s string) (PlannedCourse, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PlannedCourse{}, false
	}

	if m := fullCoursePattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[3])
		return PlannedCourse{
			Code:    normalizeCode(m[1]),
			Title:   strings.TrimSpace(m[2]),
			Credits: n,
		}, true
	}

	if m := simpleCoursePattern.FindStringSubmatch(s); m != nil {
		credits := DefaultCredits
		if m[3] != "" {
			credits, _ = strconv.Atoi(m[3])
		}
		return PlannedCourse{
			Code:    normalizeCode(m[1]),
			Title:   strings.TrimSpace(m[2]),
			Credits: credits,
		}, true
	}

	return PlannedCourse{}, false
}

func normalizeCode(code string) string {
	return strings.ReplaceAll(code, " ", ".")
}

// FormatCourseString renders a course back into display form. Missing
// fields get placeholder values rather than producing an empty string.
func FormatCourseString(c PlannedCourse) string {
	code := c.Code
	if code == "" {
		code = "UNKNOWN"
	}
	title := c.Title
	if title == "" {
		title = "Unknown Course"
	}
	return fmt.Sprintf("%s %s (%d credits)", code, title, c.Credits)
}

// semesterNames is the fixed eight-semester timeline, in order.
var semesterNames = []string{
	"Freshman Fall",
	"Freshman Spring",
	"Sophomore Fall",
	"Sophomore Spring",
	"Junior Fall",
	"Junior Spring",
	"Senior Fall",
	"Senior Spring",
}

// SemesterNames returns the timeline's semester names in order.
func SemesterNames() []string {
	out := make([]string, len(semesterNames))
	copy(out, semesterNames)
	return out
}

// SemesterIndex maps a semester name to its 0-7 timeline position.
// Unknown names map to 0.
func SemesterIndex(semester string) int {
	for i, name := range semesterNames {
		if name == semester {
			return i
		}
	}
	return 0
}

// Upsert parses the given course strings and writes them as the plan for
// the named semester, replacing an existing entry for that semester or
// appending a new one. Unparseable course strings are skipped. The input
// slice is not modified.
func Upsert(plans []SemesterPlan, semester string, courseStrings []string) []SemesterPlan {
	var courses []PlannedCourse
	for _, s := range courseStrings {
		if c, ok := ParseCourseString(s); ok {
			courses = append(courses, c)
		}
	}

	entry := SemesterPlan{
		Semester: semester,
		Index:    SemesterIndex(semester),
		Courses:  courses,
	}

	out := make([]SemesterPlan, len(plans))
	copy(out, plans)
	for i, p := range out {
		if p.Semester == semester {
			out[i] = entry
			return out
		}
	}
	return append(out, entry)
}

// PlanFor returns the courses planned for a semester, or nil when the
// semester has no plan.
func PlanFor(plans []SemesterPlan, semester string) []PlannedCourse {
	for _, p := range plans {
		if p.Semester == semester {
			return p.Courses
		}
	}
	return nil
}

// FormatAll renders every plan as display strings keyed by semester name.
func FormatAll(plans []SemesterPlan) map[string][]string {
	out := make(map[string][]string, len(plans))
	for _, p := range plans {
		strs := make([]string, 0, len(p.Courses))
		for _, c := range p.Courses {
			strs = append(strs, FormatCourseString(c))
		}
		out[p.Semester] = strs
	}
	return out
}

// Codes returns the course codes planned for a semester.
func Codes(plans []SemesterPlan, semester string) []string {
	courses := PlanFor(plans, semester)
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Code)
	}
	return out
}
