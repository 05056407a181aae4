package major

import (
	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/pattern"
)

// seedDefinitions lists every supported major. Exactly one ships today;
// new majors are added here with no engine changes.
var seedDefinitions = []Definition{
	{
		Name:                 "Computer Science",
		TotalCoursesRequired: 12,
		TotalCreditsRequired: 48,
		MinGPA:               2.0,
		MinGrade:             "C",

		CoreDescription: "7 core courses required",
		Core: []CoreCourse{
			{
				Code:             "CSCI-UA.0101",
				Name:             "Introduction to Computer Science",
				SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
				Prereq:           catalog.AnyOf("CSCI-UA.0002", "CSCI-UA.0003"),
				Notes:            "Prerequisite: CSCI-UA.0002 or CSCI-UA.0003 or placement exam",
			},
			{
				Code:             "CSCI-UA.0102",
				Name:             "Data Structures",
				SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
				Prereq:           catalog.AnyOf("CSCI-UA.0101"),
			},
			{
				Code:             "CSCI-UA.0201",
				Name:             "Computer Systems Organization",
				SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
				Prereq:           catalog.AnyOf("CSCI-UA.0102"),
			},
			{
				Code:             "CSCI-UA.0202",
				Name:             "Operating Systems",
				SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
				Prereq:           catalog.AnyOf("CSCI-UA.0201"),
			},
			{
				Code:             "CSCI-UA.0310",
				Name:             "Basic Algorithms",
				SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
				Prereq:           catalog.AnyOf("CSCI-UA.0102"),
				AdditionalRequirements: []string{
					"MATH-UA.0120", // Discrete Mathematics
					"MATH-UA.0121", // Calculus I, or MATH-UA.0131 Math for Economics I
				},
				Notes: "Also requires Discrete Mathematics and a Calculus course",
			},
			{
				Code:             "MATH-UA.0121",
				Name:             "Calculus I",
				SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring, catalog.Summer},
				Prereq:           catalog.AnyOf("MATH-UA.0009"),
				External:         true,
				Notes:            "Prerequisite: MATH-UA.0009",
			},
		},

		Electives: ElectiveRule{
			Description: "5 electives required",
			Count:       5,
			Pattern:     pattern.Parse("CSCI-UA.04xx"),
			Substitutions: Substitutions{
				Allowed:  true,
				MaxCount: 2,
				Courses: []SubstituteCourse{
					{
						Code:             "MATH-UA.0122",
						Name:             "Calculus II",
						External:         true,
						SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring, catalog.Summer},
					},
					{
						Code:             "MATH-UA.0140",
						Name:             "Linear Algebra",
						External:         true,
						SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
					},
					{
						Code:             "MATH-UA.0185",
						Name:             "Probability and Statistics",
						External:         true,
						SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring},
					},
				},
			},
		},

		Notes: []string{
			"Only grades of 'C' or higher are applicable to the major",
			"Minimum GPA of 2.0 required",
			"Electives vary every fall and spring semester",
			"One elective option offered in summer semester",
		},
	},
}
