package catalog

import (
	"encoding/json"
	"testing"
)

func TestCredits_DecodeIntegerAndRange(t *testing.T) {
	tests := []struct {
		input string
		units int
		text  string
	}{
		{`4`, 4, ""},
		{`"4"`, 4, ""},
		{`"1-4"`, 0, "1-4"},
	}
	for _, tt := range tests {
		var c Credits
		if err := json.Unmarshal([]byte(tt.input), &c); err != nil {
			t.Fatalf("decode %s: %v", tt.input, err)
		}
		if c.Units != tt.units || c.Text != tt.text {
			t.Errorf("decode %s = %+v, want units=%d text=%q", tt.input, c, tt.units, tt.text)
		}
	}
}

func TestCredits_String(t *testing.T) {
	if got := CreditsOf(4).String(); got != "4" {
		t.Errorf("CreditsOf(4).String() = %q", got)
	}
	if got := ParseCredits("1-4").String(); got != "1-4" {
		t.Errorf("ParseCredits(1-4).String() = %q", got)
	}
}

func TestCourse_DecodeLegacyRecord(t *testing.T) {
	raw := `{
		"course_code": "CSCI-UA.0380",
		"title": "Topics of General Interest",
		"subject": "CSCI-UA",
		"credits": "1-4",
		"difficulty": 0,
		"prerequisites": ["CSCI-UA.0101"],
		"semester_offered": ["Occasionally"]
	}`
	var c Course
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Credits.String() != "1-4" {
		t.Errorf("credits = %q, want 1-4", c.Credits.String())
	}
	if c.Prereq.Kind() != PrereqAnyOf {
		t.Errorf("prereq kind = %v, want PrereqAnyOf", c.Prereq.Kind())
	}
	if !c.OfferedIn(Occasionally) {
		t.Error("expected course offered Occasionally")
	}
	if c.OfferedIn(Fall) {
		t.Error("course should not be offered in Fall")
	}
}

func TestExtractTerm(t *testing.T) {
	tests := []struct {
		label string
		term  Semester
		ok    bool
	}{
		{"Freshman Fall", Fall, true},
		{"Sophomore Spring", Spring, true},
		{"summer session", Summer, true},
		{"FALL 2026", Fall, true},
		{"Fall and Spring", Fall, true}, // Fall wins on priority
		{"Winter Intersession", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		term, ok := ExtractTerm(tt.label)
		if term != tt.term || ok != tt.ok {
			t.Errorf("ExtractTerm(%q) = (%q, %v), want (%q, %v)", tt.label, term, ok, tt.term, tt.ok)
		}
	}
}
