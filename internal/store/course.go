package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apatel/gradpath/ent"
	"github.com/apatel/gradpath/ent/course"
	"github.com/apatel/gradpath/internal/catalog"
)

// courseRepo implements CourseRepo using the ent client.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) All(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.client.Course.Query().
		Order(ent.Asc(course.FieldCode)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}

	out := make([]catalog.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, courseFromEnt(row))
	}
	return out, nil
}

func (r *courseRepo) Get(ctx context.Context, code string) (*catalog.Course, error) {
	row, err := r.client.Course.Query().
		Where(course.Code(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course %s: %w", code, err)
	}
	c := courseFromEnt(row)
	return &c, nil
}

func (r *courseRepo) ReplaceAll(ctx context.Context, courses []catalog.Course) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Course.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear courses: %w", err)
	}

	builders := make([]*ent.CourseCreate, 0, len(courses))
	for _, c := range courses {
		prereq, err := json.Marshal(c.Prereq)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal prerequisites for %s: %w", c.Code, err)
		}

		semesters := make([]string, 0, len(c.SemestersOffered))
		for _, s := range c.SemestersOffered {
			semesters = append(semesters, string(s))
		}

		builders = append(builders, tx.Course.Create().
			SetCode(c.Code).
			SetTitle(c.Title).
			SetSubject(c.Subject).
			SetCategory(c.Category).
			SetCredits(c.Credits.String()).
			SetDifficulty(c.Difficulty).
			SetPrerequisites(prereq).
			SetSemesters(semesters).
			SetDescription(c.Description))
	}

	if _, err := tx.Course.CreateBulk(builders...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert courses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *courseRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Course.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

// courseFromEnt converts a stored row to a catalog record. Prerequisite
// decoding never fails; malformed stored expressions degrade to an
// unsatisfiable expression.
func courseFromEnt(row *ent.Course) catalog.Course {
	c := catalog.Course{
		Code:        row.Code,
		Title:       row.Title,
		Subject:     row.Subject,
		Category:    row.Category,
		Credits:     catalog.ParseCredits(row.Credits),
		Difficulty:  row.Difficulty,
		Description: row.Description,
	}

	if len(row.Prerequisites) > 0 {
		// UnmarshalJSON always returns nil.
		_ = json.Unmarshal(row.Prerequisites, &c.Prereq)
	}

	for _, s := range row.Semesters {
		c.SemestersOffered = append(c.SemestersOffered, catalog.Semester(s))
	}

	return c
}
