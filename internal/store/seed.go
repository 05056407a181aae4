package store

import (
	"context"
	"fmt"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/student"
)

// SeedCourses returns the built-in sample catalog: the CS core sequence
// plus a handful of electives.
func SeedCourses() []catalog.Course {
	fs := []catalog.Semester{catalog.Fall, catalog.Spring}
	return []catalog.Course{
		{
			Code:             "CSCI-UA.0002",
			Title:            "Introduction to Computer Programming (No Prior Experience)",
			Subject:          "CSCI-UA",
			Category:         "CS Foundation",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       2,
			SemestersOffered: []catalog.Semester{catalog.Fall, catalog.Spring, catalog.Summer},
		},
		{
			Code:             "CSCI-UA.0101",
			Title:            "Introduction to Computer Science",
			Subject:          "CSCI-UA",
			Category:         "CS Requirement",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       2,
			Prereq:           catalog.AnyOf("CSCI-UA.0002"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0102",
			Title:            "Data Structures",
			Subject:          "CSCI-UA",
			Category:         "CS Requirement",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       3,
			Prereq:           catalog.AnyOf("CSCI-UA.0101"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0201",
			Title:            "Computer Systems Organization",
			Subject:          "CSCI-UA",
			Category:         "CS Requirement",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       3,
			Prereq:           catalog.AnyOf("CSCI-UA.0102"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0202",
			Title:            "Operating Systems",
			Subject:          "CSCI-UA",
			Category:         "CS Requirement",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       5,
			Prereq:           catalog.AnyOf("CSCI-UA.0201"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0310",
			Title:            "Basic Algorithms",
			Subject:          "CSCI-UA",
			Category:         "CS Requirement",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       4,
			Prereq:           catalog.AnyOf("CSCI-UA.0102"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0421",
			Title:            "Numerical Computing",
			Subject:          "CSCI-UA",
			Category:         "CS Elective",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       4,
			Prereq:           catalog.AnyOf("CSCI-UA.0102"),
			SemestersOffered: []catalog.Semester{catalog.Fall},
		},
		{
			Code:             "CSCI-UA.0472",
			Title:            "Artificial Intelligence",
			Subject:          "CSCI-UA",
			Category:         "CS Elective",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       4,
			Prereq:           catalog.Group(catalog.LogicAnd, "CSCI-UA.0201", "CSCI-UA.0310"),
			SemestersOffered: []catalog.Semester{catalog.Fall},
		},
		{
			Code:             "CSCI-UA.0473",
			Title:            "Fundamentals of Machine Learning",
			Subject:          "CSCI-UA",
			Category:         "CS Elective",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       4,
			Prereq:           catalog.AnyOf("CSCI-UA.0310"),
			SemestersOffered: fs,
		},
		{
			Code:             "CSCI-UA.0474",
			Title:            "Software Engineering",
			Subject:          "CSCI-UA",
			Category:         "CS Elective",
			Credits:          catalog.CreditsOf(4),
			Difficulty:       3,
			Prereq:           catalog.AnyOf("CSCI-UA.0201"),
			SemestersOffered: []catalog.Semester{catalog.Spring},
		},
	}
}

// SeedStudents returns the built-in sample student profiles.
func SeedStudents() []student.Snapshot {
	return []student.Snapshot{
		{
			Email:            "student1@nyu.edu",
			NetID:            "student1",
			Name:             "Alice Example",
			Year:             "Freshman",
			Major:            "Computer Science",
			Interests:        []string{"AI", "Systems"},
			CompletedCourses: []string{},
		},
		{
			Email:            "student2@nyu.edu",
			NetID:            "student2",
			Name:             "Bob Example",
			Year:             "Sophomore",
			Major:            "Computer Science",
			Interests:        []string{"Software Engineering"},
			CompletedCourses: []string{"CSCI-UA.0101"},
		},
	}
}

// Seed replaces the catalog with the sample data and upserts the sample
// students.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.CourseRepo().ReplaceAll(ctx, SeedCourses()); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}

	students := s.StudentRepo()
	for _, snap := range SeedStudents() {
		if err := students.Upsert(ctx, &snap); err != nil {
			return fmt.Errorf("seed student %s: %w", snap.Email, err)
		}
	}
	return nil
}
