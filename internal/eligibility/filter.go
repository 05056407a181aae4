// Package eligibility filters the course catalog down to what a student
// can actually take in a target semester. It composes completion,
// prerequisite, and term-offering checks over an immutable catalog
// snapshot and augments the result with a major's external requirements.
package eligibility

import (
	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/major"
)

// Outcome is the result of an eligibility evaluation. The boolean flags
// surface the two fail-open degradations so callers can report them:
// an unrecognized semester label skips the term filter, and an unknown
// major skips external course augmentation.
type Outcome struct {
	Courses        []catalog.Course
	TermRecognized bool
	MajorFound     bool
}

// ForSemester returns the courses a student is eligible to take in the
// target semester, in catalog order with external requirements appended.
//
// A course is eligible when it is not already completed, its
// prerequisites are satisfied by the completed set, and it is offered in
// the term named by the semester label. All prerequisite checks run
// against the original completed set, so a course unlocked by another
// course in the same result does not itself become eligible.
//
// The semester label is free-form ("Freshman Fall", "fall 2026"). When
// no term can be extracted the offering filter is skipped entirely and
// every otherwise-eligible course passes. majorName may be empty; when
// it names a known major, external courses required by that major are
// appended if eligible, deduplicated by code with catalog records
// taking precedence.
func ForSemester(completed map[string]bool, targetSemester string, all []catalog.Course, majorName string) Outcome {
	term, termOK := catalog.ExtractTerm(targetSemester)

	out := Outcome{TermRecognized: termOK}

	inCatalog := make(map[string]bool, len(all))
	for _, c := range all {
		inCatalog[c.Code] = true

		if completed[c.Code] {
			continue
		}
		if !c.Prereq.Satisfied(completed) {
			continue
		}
		if termOK && !c.OfferedIn(term) {
			continue
		}
		out.Courses = append(out.Courses, c)
	}

	def, defOK := major.Lookup(majorName)
	out.MajorFound = defOK
	if !defOK || !termOK {
		return out
	}

	seen := make(map[string]bool)
	for _, ext := range externalRequirements(def) {
		if inCatalog[ext.Code] || seen[ext.Code] {
			continue
		}
		seen[ext.Code] = true

		if completed[ext.Code] {
			continue
		}
		if !ext.Prereq.Satisfied(completed) {
			continue
		}
		if !ext.OfferedIn(term) {
			continue
		}
		out.Courses = append(out.Courses, ext)
	}

	return out
}

// AvailableCourses is ForSemester without the degradation flags.
func AvailableCourses(completed map[string]bool, targetSemester string, all []catalog.Course, majorName string) []catalog.Course {
	return ForSemester(completed, targetSemester, all, majorName).Courses
}

// externalRequirements collects the major's external core courses and
// external substitution courses as synthesized catalog records, carrying
// the prerequisite and offering rules from the requirement definition.
func externalRequirements(def *major.Definition) []catalog.Course {
	var out []catalog.Course

	for _, req := range def.Core {
		if !req.External {
			continue
		}
		c, ok := major.ExternalCourse(req.Code)
		if !ok {
			c = catalog.Course{Code: req.Code, Title: req.Name, Credits: catalog.CreditsOf(4)}
		}
		c.Prereq = req.Prereq
		c.SemestersOffered = req.SemestersOffered
		out = append(out, c)
	}

	for _, sub := range def.Electives.Substitutions.Courses {
		if !sub.External {
			continue
		}
		c, ok := major.ExternalCourse(sub.Code)
		if !ok {
			c = catalog.Course{Code: sub.Code, Title: sub.Name, Credits: catalog.CreditsOf(4)}
		}
		c.Prereq = sub.Prereq
		c.SemestersOffered = sub.SemestersOffered
		out = append(out, c)
	}

	return out
}
