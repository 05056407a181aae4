package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Course is a single catalog record. Records are loaded wholesale from the
// store at the start of an evaluation and never mutated by the engine.
type Course struct {
	Code             string     `json:"course_code"`
	Title            string     `json:"title"`
	Subject          string     `json:"subject,omitempty"`
	Category         string     `json:"category,omitempty"`
	Credits          Credits    `json:"credits"`
	Difficulty       int        `json:"difficulty"` // 0-5, 0 = unrated
	Prereq           PrereqExpr `json:"prerequisites"`
	SemestersOffered []Semester `json:"semester_offered,omitempty"`
	Description      string     `json:"description,omitempty"`
}

// OfferedIn reports whether the course is offered in the given term.
func (c Course) OfferedIn(term Semester) bool {
	for _, s := range c.SemestersOffered {
		if s == term {
			return true
		}
	}
	return false
}

// Credits is a course credit count. Most records carry a plain integer,
// but a few legacy records carry a textual range such as "1-4". Those are
// preserved as text rather than rejected or truncated.
type Credits struct {
	Units int
	Text  string // set only for non-integer legacy values
}

// CreditsOf returns an integer credit value.
func CreditsOf(n int) Credits {
	return Credits{Units: n}
}

// ParseCredits builds a Credits value from its stored string form.
func ParseCredits(s string) Credits {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Credits{Units: n}
	}
	return Credits{Text: s}
}

// String renders the credit count the way it was recorded.
func (c Credits) String() string {
	if c.Text != "" {
		return c.Text
	}
	return strconv.Itoa(c.Units)
}

// UnmarshalJSON accepts either a JSON number or a string. A string that
// parses as an integer is normalized; anything else is kept as text.
func (c *Credits) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Credits{Units: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ParseCredits(s)
		return nil
	}
	// Unrecognized shape: treat as unrated rather than failing the record.
	*c = Credits{}
	return nil
}

// MarshalJSON emits the legacy wire shape: a number for integer credits,
// a string for textual ranges.
func (c Credits) MarshalJSON() ([]byte, error) {
	if c.Text != "" {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Units)
}
