package major

import (
	"testing"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/pattern"
)

func set(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

func testCatalog() []catalog.Course {
	codes := []string{
		"CSCI-UA.0101",
		"CSCI-UA.0102",
		"CSCI-UA.0310",
		"CSCI-UA.0421",
		"CSCI-UA.0472",
		"CSCI-UA.0474",
	}
	courses := make([]catalog.Course, 0, len(codes))
	for _, c := range codes {
		courses = append(courses, catalog.Course{Code: c, Credits: catalog.CreditsOf(4)})
	}
	return courses
}

func TestCoreStatus_Partition(t *testing.T) {
	def, ok := Lookup("Computer Science")
	if !ok {
		t.Fatal("Computer Science definition missing")
	}

	st := def.CoreStatus(set("CSCI-UA.0101", "CSCI-UA.0102"))

	if st.Count != 2 {
		t.Errorf("completed count = %d, want 2", st.Count)
	}
	if st.Total != 6 {
		t.Errorf("total = %d, want 6", st.Total)
	}
	if len(st.Remaining) != 4 {
		t.Errorf("remaining = %v, want 4 entries", st.Remaining)
	}
	for _, code := range st.Remaining {
		if code == "CSCI-UA.0101" || code == "CSCI-UA.0102" {
			t.Errorf("completed course %s listed as remaining", code)
		}
	}
}

func TestElectiveStatus_PatternAndSubstitutions(t *testing.T) {
	def, _ := Lookup("computer science") // case-insensitive

	st := def.ElectiveStatus(set("CSCI-UA.0421", "CSCI-UA.0472", "MATH-UA.0140"), testCatalog())

	if len(st.Completed) != 3 {
		t.Errorf("completed electives = %v, want 3 entries", st.Completed)
	}
	if len(st.SubstitutionsUsed) != 1 || st.SubstitutionsUsed[0] != "MATH-UA.0140" {
		t.Errorf("substitutions used = %v, want [MATH-UA.0140]", st.SubstitutionsUsed)
	}
	if st.RemainingCount != 2 {
		t.Errorf("remaining = %d, want 2", st.RemainingCount)
	}
	if st.MaxSubstitutions != 2 {
		t.Errorf("max substitutions = %d, want 2", st.MaxSubstitutions)
	}
}

func TestElectiveStatus_SubstitutionNotDoubleCounted(t *testing.T) {
	// A substitution course that also matches the elective pattern and
	// sits in the catalog must count exactly once.
	def := &Definition{
		TotalCoursesRequired: 3,
		Electives: ElectiveRule{
			Count:   3,
			Pattern: pattern.Parse("CSCI-UA.04xx"),
			Substitutions: Substitutions{
				Allowed:  true,
				MaxCount: 1,
				Courses:  []SubstituteCourse{{Code: "CSCI-UA.0421"}},
			},
		},
	}
	courses := []catalog.Course{{Code: "CSCI-UA.0421"}}

	st := def.ElectiveStatus(set("CSCI-UA.0421"), courses)

	if len(st.Completed) != 1 {
		t.Errorf("completed = %v, want exactly one entry", st.Completed)
	}
	if len(st.SubstitutionsUsed) != 0 {
		t.Errorf("substitutions used = %v, want none (counted via pattern)", st.SubstitutionsUsed)
	}
	if st.RemainingCount != 2 {
		t.Errorf("remaining = %d, want 2", st.RemainingCount)
	}
}

func TestComputeProgress(t *testing.T) {
	p, ok := ComputeProgress("Computer Science", set("CSCI-UA.0101", "CSCI-UA.0102", "CSCI-UA.0421"), testCatalog())
	if !ok {
		t.Fatal("expected major to resolve")
	}

	if p.CompletedCount != 3 {
		t.Errorf("completed count = %d, want 3", p.CompletedCount)
	}
	if p.RequiredCount != 12 {
		t.Errorf("required count = %d, want 12", p.RequiredCount)
	}
	if p.Percentage != 25.0 {
		t.Errorf("percentage = %v, want 25.0", p.Percentage)
	}
}

func TestProgress_ZeroRequiredIsZeroPercent(t *testing.T) {
	def := &Definition{Name: "Empty"}

	p := progressOf(def, set("CSCI-UA.0101"), testCatalog())

	if p.Percentage != 0 {
		t.Errorf("percentage = %v, want 0 when nothing is required", p.Percentage)
	}
}

func TestComputeProgress_UnknownMajor(t *testing.T) {
	p, ok := ComputeProgress("Philosophy", set("CSCI-UA.0101"), testCatalog())
	if ok {
		t.Fatal("Philosophy should not resolve")
	}
	if p.Major != "Philosophy" {
		t.Errorf("not-found result should echo the requested name, got %q", p.Major)
	}
	if p.Percentage != 0 || p.CompletedCount != 0 {
		t.Error("not-found result should be zero-valued")
	}
}

func TestComputeRemaining(t *testing.T) {
	r, ok := ComputeRemaining("Computer Science", set("CSCI-UA.0101", "CSCI-UA.0421"), testCatalog())
	if !ok {
		t.Fatal("expected major to resolve")
	}

	for _, c := range r.Core {
		if c.Code == "CSCI-UA.0101" {
			t.Error("completed core course listed as remaining")
		}
	}
	if len(r.Core) != 5 {
		t.Errorf("remaining core = %d entries, want 5", len(r.Core))
	}

	// Remaining electives exclude completed courses but are not
	// prerequisite-filtered.
	for _, c := range r.Electives.Available {
		if c.Code == "CSCI-UA.0421" {
			t.Error("completed elective listed as available")
		}
	}
	if len(r.Electives.Available) != 2 {
		t.Errorf("available electives = %v, want 2 entries", r.Electives.Available)
	}
	if r.Electives.CountNeeded != 4 {
		t.Errorf("electives needed = %d, want 4", r.Electives.CountNeeded)
	}
	if len(r.Electives.Substitutes) != 3 {
		t.Errorf("substitutes = %d entries, want 3", len(r.Electives.Substitutes))
	}
}

func TestLookup_Normalization(t *testing.T) {
	for _, name := range []string{"Computer Science", "computer science", "  COMPUTER SCIENCE  "} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) should resolve", name)
		}
	}
	if _, ok := Lookup("Philosophy"); ok {
		t.Error("Lookup(Philosophy) should not resolve")
	}
}

func TestExternalCourse(t *testing.T) {
	c, ok := ExternalCourse("MATH-UA.0140")
	if !ok {
		t.Fatal("MATH-UA.0140 should be an external course")
	}
	if c.Title != "Linear Algebra" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Subject != "MATH-UA" {
		t.Errorf("subject = %q, want MATH-UA", c.Subject)
	}
	if c.Credits.Units != 4 {
		t.Errorf("credits = %v, want 4", c.Credits)
	}
	if c.Difficulty != 0 || !c.Prereq.IsEmpty() || len(c.SemestersOffered) != 0 {
		t.Error("external course defaults should be zero-valued")
	}

	if _, ok := ExternalCourse("CSCI-UA.0101"); ok {
		t.Error("catalog course should not resolve as external")
	}
	if !IsExternal("MATH-UA.0009") || IsExternal("CSCI-UA.0101") {
		t.Error("IsExternal misclassified a code")
	}
}
