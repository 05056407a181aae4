// Package pattern matches course codes against requirement patterns.
//
// A pattern is stored as a single string and parsed once into a typed
// value; matching is then plain prefix and integer comparison instead of
// repeated string surgery. Supported forms, for codes shaped like
// "SUBJECT-LEVEL.NUMBER":
//
//	CSCI-UA.0101        exact code
//	CSCI-UA.04xx        wildcard over the trailing digits
//	MATH-UA.0121+       numeric suffix >= 0121, same prefix
//	MATH-UA.0121-       numeric suffix <= 0121, same prefix
//	MATH-UA.0120-0140   inclusive numeric range, same prefix
//
// Malformed patterns and codes never error; they simply fail to match.
package pattern

import (
	"strconv"
	"strings"
)

// Kind is the parsed pattern form.
type Kind int

const (
	Exact Kind = iota
	Wildcard
	LowerBound
	UpperBound
	NumericRange
)

// Pattern is a parsed course-code pattern.
type Pattern struct {
	raw    string
	kind   Kind
	prefix string
	length int // Wildcard: required code length
	lo, hi int // LowerBound uses lo, UpperBound uses hi, NumericRange both
}

// Parse classifies a pattern string. It never fails: any string that
// doesn't parse as one of the structured forms is an exact pattern.
func Parse(raw string) Pattern {
	p := Pattern{raw: raw, kind: Exact}

	if strings.Contains(raw, "xx") {
		p.kind = Wildcard
		p.prefix = strings.ReplaceAll(raw, "xx", "")
		p.length = len(raw)
		return p
	}

	if base, found := strings.CutSuffix(raw, "+"); found {
		if prefix, n, ok := splitCode(base); ok {
			p.kind = LowerBound
			p.prefix = prefix
			p.lo = n
			return p
		}
		return p
	}

	if base, found := strings.CutSuffix(raw, "-"); found {
		if prefix, n, ok := splitCode(base); ok {
			p.kind = UpperBound
			p.prefix = prefix
			p.hi = n
			return p
		}
		return p
	}

	if prefix, lo, hi, ok := splitRange(raw); ok {
		p.kind = NumericRange
		p.prefix = prefix
		p.lo = lo
		p.hi = hi
		return p
	}

	return p
}

// Raw returns the original pattern string.
func (p Pattern) Raw() string { return p.raw }

// Kind returns the parsed form.
func (p Pattern) Kind() Kind { return p.kind }

// Matches reports whether a course code satisfies the pattern.
// An exact string match succeeds for any pattern form. Beyond that, a
// code must carry a numeric trailing segment after its "." separator;
// codes without one never match a non-exact pattern.
func (p Pattern) Matches(code string) bool {
	if code == p.raw {
		return true
	}

	prefix, num, ok := splitCode(code)
	if !ok {
		return false
	}

	switch p.kind {
	case Wildcard:
		return strings.HasPrefix(code, p.prefix) && len(code) == p.length
	case LowerBound:
		return prefix == p.prefix && num >= p.lo
	case UpperBound:
		return prefix == p.prefix && num <= p.hi
	case NumericRange:
		return prefix == p.prefix && num >= p.lo && num <= p.hi
	default:
		return false
	}
}

// Matches is a convenience for one-off checks against a stored pattern
// string.
func Matches(code, pat string) bool {
	return Parse(pat).Matches(code)
}

// splitCode splits "PREFIX.NUMBER" at the last dot and parses the
// numeric suffix. Returns false when there is no dot or the suffix is
// not a plain non-negative integer.
func splitCode(code string) (prefix string, num int, ok bool) {
	i := strings.LastIndex(code, ".")
	if i < 0 {
		return "", 0, false
	}
	suffix := code[i+1:]
	if suffix == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return "", 0, false
	}
	return code[:i], n, true
}

// splitRange recognizes the two range spellings: "PREFIX.LO-HI" with a
// bare numeric upper half, and "PREFIX.LO-PREFIX.HI" with both halves
// fully qualified. The subject prefix itself may contain hyphens
// ("MATH-UA"), so every hyphen position is tried until one yields a
// clean split with matching prefixes.
func splitRange(raw string) (prefix string, lo, hi int, ok bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '-' {
			continue
		}
		left, right := raw[:i], raw[i+1:]

		lp, ln, lok := splitCode(left)
		if !lok {
			continue
		}

		// Bare numeric upper bound: "MATH-UA.0120-0140".
		if n, err := strconv.Atoi(right); err == nil && n >= 0 {
			return lp, ln, n, true
		}

		// Fully qualified upper bound: "MATH-UA.0120-MATH-UA.0140".
		if rp, rn, rok := splitCode(right); rok && rp == lp {
			return lp, ln, rn, true
		}
	}
	return "", 0, 0, false
}
