package planner

import (
	"reflect"
	"testing"
)

func TestParseCourseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PlannedCourse
		ok    bool
	}{
		{
			name:  "full format",
			input: "CSCI-UA.0101 Introduction to Computer Science (4 credits)",
			want:  PlannedCourse{Code: "CSCI-UA.0101", Title: "Introduction to Computer Science", Credits: 4},
			ok:    true,
		},
		{
			name:  "singular credit",
			input: "MATH-UA.0120 Discrete Mathematics (1 credit)",
			want:  PlannedCourse{Code: "MATH-UA.0120", Title: "Discrete Mathematics", Credits: 1},
			ok:    true,
		},
		{
			name:  "no credit suffix defaults to 4",
			input: "CSCI-UA.0101 Introduction to Computer Science",
			want:  PlannedCourse{Code: "CSCI-UA.0101", Title: "Introduction to Computer Science", Credits: 4},
			ok:    true,
		},
		{
			name:  "bare parenthesized number",
			input: "CSCI-UA.0102 Data Structures (3)",
			want:  PlannedCourse{Code: "CSCI-UA.0102", Title: "Data Structures", Credits: 3},
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  CSCI-UA.0101 Intro to CS (4 credits)  ",
			want:  PlannedCourse{Code: "CSCI-UA.0101", Title: "Intro to CS", Credits: 4},
			ok:    true,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
		{
			name:  "no course code",
			input: "random text here",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCourseString(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatCourseString(t *testing.T) {
	c := PlannedCourse{Code: "CSCI-UA.0101", Title: "Introduction to Computer Science", Credits: 4}
	want := "CSCI-UA.0101 Introduction to Computer Science (4 credits)"
	if got := FormatCourseString(c); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Missing fields get placeholders.
	got := FormatCourseString(PlannedCourse{})
	if got != "UNKNOWN Unknown Course (0 credits)" {
		t.Errorf("placeholder format = %q", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	orig := "MATH-UA.0121 Calculus I (4 credits)"
	c, ok := ParseCourseString(orig)
	if !ok {
		t.Fatal("parse failed")
	}
	if got := FormatCourseString(c); got != orig {
		t.Errorf("round trip = %q, want %q", got, orig)
	}
}

func TestSemesterIndex(t *testing.T) {
	for i, name := range SemesterNames() {
		if got := SemesterIndex(name); got != i {
			t.Errorf("SemesterIndex(%q) = %d, want %d", name, got, i)
		}
	}
	if got := SemesterIndex("Invalid Semester"); got != 0 {
		t.Errorf("unknown semester index = %d, want 0", got)
	}
}

func TestUpsert(t *testing.T) {
	plans := Upsert(nil, "Freshman Fall", []string{
		"CSCI-UA.0101 Introduction to Computer Science (4 credits)",
		"not a course at all",
		"MATH-UA.0121 Calculus I (4 credits)",
	})

	if len(plans) != 1 {
		t.Fatalf("plans = %d entries, want 1", len(plans))
	}
	if plans[0].Index != 0 {
		t.Errorf("index = %d, want 0", plans[0].Index)
	}
	if got := Codes(plans, "Freshman Fall"); !reflect.DeepEqual(got, []string{"CSCI-UA.0101", "MATH-UA.0121"}) {
		t.Errorf("codes = %v", got)
	}

	// Replacing an existing semester keeps a single entry and leaves the
	// input untouched.
	updated := Upsert(plans, "Freshman Fall", []string{"CSCI-UA.0102 Data Structures (4 credits)"})
	if len(updated) != 1 {
		t.Fatalf("updated plans = %d entries, want 1", len(updated))
	}
	if got := Codes(updated, "Freshman Fall"); !reflect.DeepEqual(got, []string{"CSCI-UA.0102"}) {
		t.Errorf("updated codes = %v", got)
	}
	if got := Codes(plans, "Freshman Fall"); len(got) != 2 {
		t.Errorf("original plans mutated: %v", got)
	}

	// A second semester appends.
	two := Upsert(updated, "Freshman Spring", []string{"MATH-UA.0122 Calculus II (4 credits)"})
	if len(two) != 2 {
		t.Fatalf("plans = %d entries, want 2", len(two))
	}
	if two[1].Index != 1 {
		t.Errorf("Freshman Spring index = %d, want 1", two[1].Index)
	}
}

func TestPlanFor(t *testing.T) {
	plans := Upsert(nil, "Junior Fall", []string{"CSCI-UA.0480 Special Topics (4 credits)"})

	if got := PlanFor(plans, "Junior Fall"); len(got) != 1 || got[0].Code != "CSCI-UA.0480" {
		t.Errorf("PlanFor = %+v", got)
	}
	if got := PlanFor(plans, "Senior Fall"); got != nil {
		t.Errorf("missing semester should return nil, got %+v", got)
	}
}

func TestFormatAll(t *testing.T) {
	plans := Upsert(nil, "Freshman Fall", []string{"CSCI-UA.0101 Intro to CS (4 credits)"})
	plans = Upsert(plans, "Freshman Spring", []string{"CSCI-UA.0102 Data Structures (4 credits)"})

	got := FormatAll(plans)
	if len(got) != 2 {
		t.Fatalf("FormatAll = %d semesters, want 2", len(got))
	}
	if !reflect.DeepEqual(got["Freshman Fall"], []string{"CSCI-UA.0101 Intro to CS (4 credits)"}) {
		t.Errorf("Freshman Fall = %v", got["Freshman Fall"])
	}
}
