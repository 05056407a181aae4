package major

import (
	"math"

	"github.com/apatel/gradpath/internal/catalog"
)

// CoreStatus partitions a major's core course codes by completion.
type CoreStatus struct {
	Completed []string
	Remaining []string
	Count     int
	Total     int
}

// CoreStatus computes core requirement completion from a completed set.
func (d *Definition) CoreStatus(completed map[string]bool) CoreStatus {
	st := CoreStatus{Total: len(d.Core)}
	for _, req := range d.Core {
		if completed[req.Code] {
			st.Completed = append(st.Completed, req.Code)
		} else {
			st.Remaining = append(st.Remaining, req.Code)
		}
	}
	st.Count = len(st.Completed)
	return st
}

// ElectiveStatus accounts for completed electives and substitutions.
type ElectiveStatus struct {
	Completed         []string
	RemainingCount    int
	SubstitutionsUsed []string
	MaxSubstitutions  int
}

// ElectiveStatus scans the catalog snapshot for completed courses
// matching the elective pattern, then folds in completed substitution
// courses. Counting is tracked by code set, so a substitution course
// that also matches the elective pattern is counted once.
func (d *Definition) ElectiveStatus(completed map[string]bool, courses []catalog.Course) ElectiveStatus {
	st := ElectiveStatus{}
	counted := make(map[string]bool)

	for _, c := range courses {
		if completed[c.Code] && !counted[c.Code] && d.Electives.Pattern.Matches(c.Code) {
			counted[c.Code] = true
			st.Completed = append(st.Completed, c.Code)
		}
	}

	if d.Electives.Substitutions.Allowed {
		st.MaxSubstitutions = d.Electives.Substitutions.MaxCount
		for _, sub := range d.Electives.Substitutions.Courses {
			if completed[sub.Code] && !counted[sub.Code] {
				counted[sub.Code] = true
				st.SubstitutionsUsed = append(st.SubstitutionsUsed, sub.Code)
				st.Completed = append(st.Completed, sub.Code)
			}
		}
	}

	st.RemainingCount = max(0, d.Electives.Count-len(st.Completed))
	return st
}

// Progress summarizes overall completion toward a major.
type Progress struct {
	Major          string
	Core           CoreStatus
	Electives      ElectiveStatus
	CompletedCount int
	RequiredCount  int
	Percentage     float64 // 0-100, rounded to 2 decimals
}

// ComputeProgress evaluates a student's progress toward a major. The
// second return value is false when the major is unknown; the zero
// Progress carries only the requested name so callers can report it.
func ComputeProgress(majorName string, completed map[string]bool, courses []catalog.Course) (Progress, bool) {
	def, ok := Lookup(majorName)
	if !ok {
		return Progress{Major: majorName}, false
	}
	return progressOf(def, completed, courses), true
}

func progressOf(def *Definition, completed map[string]bool, courses []catalog.Course) Progress {
	core := def.CoreStatus(completed)
	electives := def.ElectiveStatus(completed, courses)

	p := Progress{
		Major:          def.Name,
		Core:           core,
		Electives:      electives,
		CompletedCount: core.Count + len(electives.Completed),
		RequiredCount:  def.TotalCoursesRequired,
	}
	if p.RequiredCount > 0 {
		pct := float64(p.CompletedCount) / float64(p.RequiredCount) * 100
		p.Percentage = math.Round(pct*100) / 100
	}
	return p
}

// RemainingCoreCourse is a not-yet-completed core requirement with
// enough detail for planning and prompt construction.
type RemainingCoreCourse struct {
	Code             string
	Name             string
	Prereq           catalog.PrereqExpr
	SemestersOffered []catalog.Semester
	Notes            string
}

// RemainingElectives describes open elective slots. Available lists
// catalog courses matching the elective pattern that are not yet
// completed; it is NOT prerequisite- or semester-filtered. This reports
// open requirement slots; per-semester eligibility is the eligibility
// filter's job.
type RemainingElectives struct {
	CountNeeded int
	Available   []catalog.Course
	Substitutes []SubstituteCourse
}

// Remaining is the full set of open requirements for a major.
type Remaining struct {
	Major     string
	Core      []RemainingCoreCourse
	Electives RemainingElectives
}

// ComputeRemaining lists the requirements a student has not yet
// satisfied. The second return value is false when the major is unknown.
func ComputeRemaining(majorName string, completed map[string]bool, courses []catalog.Course) (Remaining, bool) {
	def, ok := Lookup(majorName)
	if !ok {
		return Remaining{Major: majorName}, false
	}

	r := Remaining{Major: def.Name}

	for _, req := range def.Core {
		if completed[req.Code] {
			continue
		}
		r.Core = append(r.Core, RemainingCoreCourse{
			Code:             req.Code,
			Name:             req.Name,
			Prereq:           req.Prereq,
			SemestersOffered: req.SemestersOffered,
			Notes:            req.Notes,
		})
	}

	electives := def.ElectiveStatus(completed, courses)
	r.Electives.CountNeeded = electives.RemainingCount
	r.Electives.Substitutes = def.Electives.Substitutions.Courses

	for _, c := range courses {
		if !completed[c.Code] && def.Electives.Pattern.Matches(c.Code) {
			r.Electives.Available = append(r.Electives.Available, c)
		}
	}

	return r, true
}
