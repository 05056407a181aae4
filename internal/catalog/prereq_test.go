package catalog

import (
	"encoding/json"
	"testing"
)

func completedSet(codes ...string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

func TestPrereq_EmptyAlwaysSatisfied(t *testing.T) {
	var e PrereqExpr
	if !e.Satisfied(nil) {
		t.Error("zero-value expression should be satisfied")
	}
	if !AnyOf().Satisfied(completedSet()) {
		t.Error("empty OR-list should be satisfied")
	}
}

func TestPrereq_OrList(t *testing.T) {
	e := AnyOf("CSCI-UA.0101", "CSCI-UA.0002")

	if !e.Satisfied(completedSet("CSCI-UA.0002")) {
		t.Error("OR-list should be satisfied by one completed course")
	}
	if e.Satisfied(completedSet()) {
		t.Error("OR-list should not be satisfied by empty set")
	}
	if e.Satisfied(completedSet("MATH-UA.0121")) {
		t.Error("OR-list should not be satisfied by unrelated course")
	}
}

func TestPrereq_AndGroup(t *testing.T) {
	e := Group(LogicAnd, "CSCI-UA.0101", "MATH-UA.0120")

	if e.Satisfied(completedSet("CSCI-UA.0101")) {
		t.Error("AND group should not be satisfied by partial set")
	}
	if !e.Satisfied(completedSet("CSCI-UA.0101", "MATH-UA.0120")) {
		t.Error("AND group should be satisfied by full set")
	}
	if !e.Satisfied(completedSet("CSCI-UA.0101", "MATH-UA.0120", "CSCI-UA.0102")) {
		t.Error("AND group should be satisfied by superset")
	}
}

func TestPrereq_UnknownLogicBehavesAsOr(t *testing.T) {
	e := Group("xor", "A", "B")

	if !e.Satisfied(completedSet("B")) {
		t.Error("unknown logic tag should fall back to OR")
	}
	if e.Satisfied(completedSet()) {
		t.Error("unknown logic tag with empty set should not be satisfied")
	}
}

func TestPrereq_DecodeShapes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		kind      PrereqKind
		completed map[string]bool
		want      bool
	}{
		{"null", `null`, PrereqNone, nil, true},
		{"empty list", `[]`, PrereqNone, nil, true},
		{"bare list is OR", `["A","B"]`, PrereqAnyOf, completedSet("B"), true},
		{"and group", `{"logic":"and","courses":["A","B"]}`, PrereqGroup, completedSet("A"), false},
		{"and group full", `{"logic":"AND","courses":["A","B"]}`, PrereqGroup, completedSet("A", "B"), true},
		{"or group", `{"logic":"or","courses":["A","B"]}`, PrereqGroup, completedSet("A"), true},
		{"object missing courses", `{"logic":"and"}`, PrereqInvalid, completedSet("A"), false},
		{"object missing logic", `{"courses":["A"]}`, PrereqInvalid, completedSet("A"), false},
		{"scalar", `42`, PrereqInvalid, completedSet("A"), false},
		{"mixed list", `["A", 5]`, PrereqInvalid, completedSet("A"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e PrereqExpr
			if err := json.Unmarshal([]byte(tt.input), &e); err != nil {
				t.Fatalf("decode should never fail, got %v", err)
			}
			if e.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", e.Kind(), tt.kind)
			}
			if got := e.Satisfied(tt.completed); got != tt.want {
				t.Errorf("Satisfied = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrereq_RoundTrip(t *testing.T) {
	inputs := []string{
		`[]`,
		`["CSCI-UA.0101"]`,
		`{"logic":"and","courses":["A","B"]}`,
		`{"weird":"shape"}`,
	}
	for _, in := range inputs {
		var e PrereqExpr
		if err := json.Unmarshal([]byte(in), &e); err != nil {
			t.Fatalf("decode %s: %v", in, err)
		}
		out, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("encode %s: %v", in, err)
		}
		var before, after any
		if err := json.Unmarshal([]byte(in), &before); err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(out, &after); err != nil {
			t.Fatal(err)
		}
		// Compare re-decoded values so key ordering doesn't matter.
		b, _ := json.Marshal(before)
		a, _ := json.Marshal(after)
		if string(a) != string(b) {
			t.Errorf("round trip of %s produced %s", in, out)
		}
	}
}
