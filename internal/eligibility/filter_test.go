package eligibility

import (
	"reflect"
	"testing"

	"github.com/apatel/gradpath/internal/catalog"
)

func completedSet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

func testCatalog() []catalog.Course {
	return []catalog.Course{
		{
			Code:             "CSCI-UA.0101",
			Title:            "Introduction to Computer Science",
			SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
		},
		{
			Code:             "CSCI-UA.0102",
			Title:            "Data Structures",
			Prereq:           catalog.AnyOf("CSCI-UA.0101"),
			SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
		},
		{
			Code:             "CSCI-UA.0201",
			Title:            "Computer Systems Organization",
			Prereq:           catalog.AnyOf("CSCI-UA.0102"),
			SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
		},
		{
			Code:             "CSCI-UA.0480",
			Title:            "Special Topics",
			Prereq:           catalog.AnyOf("CSCI-UA.0201"),
			SemestersOffered: []catalog.Semester{catalog.Fall},
		},
	}
}

func codesOf(courses []catalog.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Code)
	}
	return out
}

func TestForSemester_FreshmanFall(t *testing.T) {
	out := ForSemester(completedSet(), "Freshman Fall", testCatalog(), "")

	if !out.TermRecognized {
		t.Error("term should be recognized")
	}
	if got := codesOf(out.Courses); !reflect.DeepEqual(got, []string{"CSCI-UA.0101"}) {
		t.Errorf("eligible = %v, want [CSCI-UA.0101]", got)
	}
}

func TestForSemester_PrereqUnlocksNextCourse(t *testing.T) {
	out := ForSemester(completedSet("CSCI-UA.0101"), "Freshman Spring", testCatalog(), "")

	got := codesOf(out.Courses)
	if !reflect.DeepEqual(got, []string{"CSCI-UA.0102"}) {
		t.Errorf("eligible = %v, want [CSCI-UA.0102]", got)
	}
}

func TestForSemester_ChecksAgainstOriginalCompletedSet(t *testing.T) {
	// CSCI-UA.0102 becomes eligible, but CSCI-UA.0201 must not: its
	// prerequisite is only present in the result, not in the completed set.
	out := ForSemester(completedSet("CSCI-UA.0101"), "Fall", testCatalog(), "")

	for _, c := range out.Courses {
		if c.Code == "CSCI-UA.0201" {
			t.Error("CSCI-UA.0201 eligible despite uncompleted prerequisite")
		}
	}
}

func TestForSemester_CompletedCoursesNeverReappear(t *testing.T) {
	completed := completedSet("CSCI-UA.0101", "CSCI-UA.0102")
	out := ForSemester(completed, "Fall", testCatalog(), "")

	for _, c := range out.Courses {
		if completed[c.Code] {
			t.Errorf("completed course %s reappeared as eligible", c.Code)
		}
	}
}

func TestForSemester_TermFilter(t *testing.T) {
	// Special Topics is Fall-only; with its prerequisite met it must show
	// in fall and not in spring.
	completed := completedSet("CSCI-UA.0101", "CSCI-UA.0102", "CSCI-UA.0201")

	fall := codesOf(ForSemester(completed, "Senior Fall", testCatalog(), "").Courses)
	if !reflect.DeepEqual(fall, []string{"CSCI-UA.0480"}) {
		t.Errorf("fall eligible = %v, want [CSCI-UA.0480]", fall)
	}

	spring := ForSemester(completed, "Senior Spring", testCatalog(), "").Courses
	if len(spring) != 0 {
		t.Errorf("spring eligible = %v, want empty", codesOf(spring))
	}
}

func TestForSemester_UnrecognizedTermSkipsOfferingFilter(t *testing.T) {
	completed := completedSet("CSCI-UA.0101", "CSCI-UA.0102", "CSCI-UA.0201")
	out := ForSemester(completed, "Winter Intersession", testCatalog(), "")

	if out.TermRecognized {
		t.Error("term should not be recognized")
	}
	// The offering filter is skipped, so the Fall-only course passes.
	if got := codesOf(out.Courses); !reflect.DeepEqual(got, []string{"CSCI-UA.0480"}) {
		t.Errorf("eligible = %v, want [CSCI-UA.0480]", got)
	}
}

func TestForSemester_ExternalAugmentation(t *testing.T) {
	out := ForSemester(completedSet("CSCI-UA.0101", "MATH-UA.0009"), "Freshman Fall", testCatalog(), "Computer Science")

	if !out.MajorFound {
		t.Error("Computer Science should resolve")
	}

	got := codesOf(out.Courses)
	if got[0] != "CSCI-UA.0102" {
		t.Errorf("catalog courses should come first, got %v", got)
	}

	want := map[string]bool{
		"MATH-UA.0121": true, // Calculus I, prerequisite MATH-UA.0009 met
		"MATH-UA.0122": true,
		"MATH-UA.0140": true,
		"MATH-UA.0185": true,
	}
	for _, code := range got[1:] {
		if !want[code] {
			t.Errorf("unexpected external course %s", code)
		}
		delete(want, code)
	}
	for code := range want {
		t.Errorf("external course %s missing from result", code)
	}
}

func TestForSemester_ExternalPrereqEnforced(t *testing.T) {
	// Without Precalculus, Calculus I stays out.
	out := ForSemester(completedSet(), "Fall", testCatalog(), "Computer Science")

	for _, c := range out.Courses {
		if c.Code == "MATH-UA.0121" {
			t.Error("MATH-UA.0121 eligible despite missing prerequisite")
		}
	}
}

func TestForSemester_CatalogWinsOverExternal(t *testing.T) {
	all := append(testCatalog(), catalog.Course{
		Code:             "MATH-UA.0121",
		Title:            "Calculus I (catalog listing)",
		SemestersOffered: []catalog.Semester{catalog.Fall},
	})

	out := ForSemester(completedSet(), "Fall", all, "Computer Science")

	count := 0
	for _, c := range out.Courses {
		if c.Code == "MATH-UA.0121" {
			count++
			if c.Title != "Calculus I (catalog listing)" {
				t.Errorf("title = %q, want the catalog record to win", c.Title)
			}
		}
	}
	if count != 1 {
		t.Errorf("MATH-UA.0121 appeared %d times, want exactly once", count)
	}
}

func TestForSemester_UnknownMajorMatchesNoMajor(t *testing.T) {
	completed := completedSet("CSCI-UA.0101")

	withUnknown := ForSemester(completed, "Fall", testCatalog(), "Philosophy")
	without := ForSemester(completed, "Fall", testCatalog(), "")

	if withUnknown.MajorFound {
		t.Error("Philosophy should not resolve")
	}
	if !reflect.DeepEqual(codesOf(withUnknown.Courses), codesOf(without.Courses)) {
		t.Errorf("unknown major result %v differs from no-major result %v",
			codesOf(withUnknown.Courses), codesOf(without.Courses))
	}
}

func TestForSemester_EmptyCatalog(t *testing.T) {
	out := ForSemester(completedSet("CSCI-UA.0101"), "Fall", nil, "")
	if len(out.Courses) != 0 {
		t.Errorf("eligible = %v, want empty", codesOf(out.Courses))
	}
}

func TestAvailableCourses(t *testing.T) {
	got := AvailableCourses(completedSet(), "Freshman Fall", testCatalog(), "")
	if !reflect.DeepEqual(codesOf(got), []string{"CSCI-UA.0101"}) {
		t.Errorf("available = %v, want [CSCI-UA.0101]", codesOf(got))
	}
}
