package student

import (
	"testing"

	"github.com/apatel/gradpath/internal/planner"
	"github.com/stretchr/testify/assert"
)

func TestNetIDFromEmail(t *testing.T) {
	assert.Equal(t, "abc123", NetIDFromEmail("abc123@nyu.edu"))
	assert.Equal(t, "noatsign", NetIDFromEmail("noatsign"))
}

func TestCompletedSet(t *testing.T) {
	s := Snapshot{CompletedCourses: []string{"CSCI-UA.0101", "CSCI-UA.0102"}}

	set := s.CompletedSet()
	assert.True(t, set["CSCI-UA.0101"])
	assert.True(t, set["CSCI-UA.0102"])
	assert.False(t, set["CSCI-UA.0201"])
}

func TestCompletedWithPlanned(t *testing.T) {
	s := Snapshot{
		CompletedCourses: []string{"CSCI-UA.0101"},
		PlannedSemesters: []planner.SemesterPlan{
			{
				Semester: "Freshman Spring",
				Index:    1,
				Courses:  []planner.PlannedCourse{{Code: "CSCI-UA.0102"}},
			},
			{
				Semester: "Sophomore Fall",
				Index:    2,
				Courses:  []planner.PlannedCourse{{Code: "CSCI-UA.0201"}},
			},
		},
	}

	// Evaluating Sophomore Fall: the Freshman Spring plan counts as
	// completed, the Sophomore Fall plan itself does not.
	set := s.CompletedWithPlanned("Sophomore Fall")
	assert.True(t, set["CSCI-UA.0101"])
	assert.True(t, set["CSCI-UA.0102"], "prior planned courses should count as completed")
	assert.False(t, set["CSCI-UA.0201"], "target semester's own plan should not count")
}

func TestPlannedCodes(t *testing.T) {
	s := Snapshot{
		PlannedSemesters: []planner.SemesterPlan{
			{Semester: "Junior Fall", Index: 4, Courses: []planner.PlannedCourse{{Code: "CSCI-UA.0480"}}},
		},
	}
	assert.Equal(t, []string{"CSCI-UA.0480"}, s.PlannedCodes("Junior Fall"))
	assert.Empty(t, s.PlannedCodes("Senior Fall"))
}
