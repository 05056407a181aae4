package catalog

import (
	"encoding/json"
	"slices"
	"strings"
)

// PrereqKind discriminates the closed set of prerequisite expression shapes.
type PrereqKind int

const (
	// PrereqNone means no prerequisite; always satisfied.
	PrereqNone PrereqKind = iota
	// PrereqAnyOf is the legacy bare-list shape; satisfied when any listed
	// course is completed.
	PrereqAnyOf
	// PrereqGroup is the tagged {logic, courses} shape.
	PrereqGroup
	// PrereqInvalid marks a record whose stored expression had an
	// unrecognized shape. It never satisfies, blocking eligibility rather
	// than granting it.
	PrereqInvalid
)

// PrereqLogic is the tag on a grouped prerequisite expression.
type PrereqLogic string

const (
	LogicAnd PrereqLogic = "and"
	LogicOr  PrereqLogic = "or"
)

// PrereqExpr is a course prerequisite rule, decoded once at the data
// ingestion boundary. The zero value means "no prerequisites".
//
// Evaluation is a pure function of the expression and a completed-course
// set: no I/O, no catalog lookups, and no errors. Malformed stored data
// degrades to an unsatisfiable expression instead of raising.
type PrereqExpr struct {
	kind  PrereqKind
	logic PrereqLogic
	codes []string
	raw   json.RawMessage // original bytes, kept only for invalid shapes
}

// AnyOf builds the legacy OR-list shape. An empty list means no
// prerequisites.
func AnyOf(codes ...string) PrereqExpr {
	if len(codes) == 0 {
		return PrereqExpr{}
	}
	return PrereqExpr{kind: PrereqAnyOf, codes: slices.Clone(codes)}
}

// Group builds a tagged logic group. The logic tag is lower-cased; tags
// other than "and" evaluate as OR.
func Group(logic PrereqLogic, codes ...string) PrereqExpr {
	return PrereqExpr{
		kind:  PrereqGroup,
		logic: PrereqLogic(strings.ToLower(string(logic))),
		codes: slices.Clone(codes),
	}
}

// Kind returns the expression's shape.
func (e PrereqExpr) Kind() PrereqKind { return e.kind }

// Logic returns the group tag, empty for non-group shapes.
func (e PrereqExpr) Logic() PrereqLogic { return e.logic }

// Codes returns the referenced course codes.
func (e PrereqExpr) Codes() []string { return slices.Clone(e.codes) }

// IsEmpty reports whether the expression imposes no requirement.
func (e PrereqExpr) IsEmpty() bool { return e.kind == PrereqNone }

// Satisfied reports whether the expression is met by the completed set.
//
//   - no expression: always satisfied
//   - OR-list: at least one listed code completed
//   - group with logic "and": every listed code completed
//   - group with logic "or" or any unrecognized tag: same as OR-list
//   - invalid shape: never satisfied
func (e PrereqExpr) Satisfied(completed map[string]bool) bool {
	switch e.kind {
	case PrereqNone:
		return true
	case PrereqAnyOf:
		return anyCompleted(e.codes, completed)
	case PrereqGroup:
		if e.logic == LogicAnd {
			return allCompleted(e.codes, completed)
		}
		return anyCompleted(e.codes, completed)
	default:
		return false
	}
}

func anyCompleted(codes []string, completed map[string]bool) bool {
	for _, c := range codes {
		if completed[c] {
			return true
		}
	}
	return false
}

func allCompleted(codes []string, completed map[string]bool) bool {
	for _, c := range codes {
		if !completed[c] {
			return false
		}
	}
	return true
}

// prereqGroupJSON is the tagged wire shape.
type prereqGroupJSON struct {
	Logic   *string  `json:"logic"`
	Courses []string `json:"courses"`
}

// UnmarshalJSON decodes the two legacy wire shapes: a bare list of codes
// (OR) and a {"logic": ..., "courses": [...]} object. Anything else,
// including a list with non-string elements or an object missing either
// key, becomes an invalid expression. Decoding itself never fails.
func (e *PrereqExpr) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*e = PrereqExpr{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*e = AnyOf(list...)
		return nil
	}

	var group prereqGroupJSON
	if err := json.Unmarshal(data, &group); err == nil && group.Logic != nil && group.Courses != nil {
		*e = Group(PrereqLogic(*group.Logic), group.Courses...)
		return nil
	}

	*e = PrereqExpr{kind: PrereqInvalid, raw: slices.Clone(data)}
	return nil
}

// MarshalJSON emits the legacy wire shapes so records round-trip through
// the store unchanged. Invalid expressions re-emit their original bytes.
func (e PrereqExpr) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case PrereqNone:
		return []byte("[]"), nil
	case PrereqAnyOf:
		return json.Marshal(e.codes)
	case PrereqGroup:
		logic := string(e.logic)
		courses := e.codes
		if courses == nil {
			courses = []string{}
		}
		return json.Marshal(prereqGroupJSON{Logic: &logic, Courses: courses})
	default:
		if len(e.raw) > 0 {
			return slices.Clone(e.raw), nil
		}
		return []byte("null"), nil
	}
}
