// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/apatel/gradpath/ent/course"
	"github.com/apatel/gradpath/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *CourseUpdate) SetCode(v string) *CourseUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCode(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CourseUpdate) SetSubject(v string) *CourseUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSubject(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdate) SetCategory(v string) *CourseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCategory(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *CourseUpdate) SetCredits(v string) *CourseUpdate {
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCredits(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CourseUpdate) SetDifficulty(v int) *CourseUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDifficulty(v *int) *CourseUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CourseUpdate) AddDifficulty(v int) *CourseUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *CourseUpdate) SetPrerequisites(v json.RawMessage) *CourseUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *CourseUpdate) AppendPrerequisites(v json.RawMessage) *CourseUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *CourseUpdate) ClearPrerequisites() *CourseUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetSemesters sets the "semesters" field.
func (_u *CourseUpdate) SetSemesters(v []string) *CourseUpdate {
	_u.mutation.SetSemesters(v)
	return _u
}

// AppendSemesters appends value to the "semesters" field.
func (_u *CourseUpdate) AppendSemesters(v []string) *CourseUpdate {
	_u.mutation.AppendSemesters(v)
	return _u
}

// ClearSemesters clears the value of the "semesters" field.
func (_u *CourseUpdate) ClearSemesters() *CourseUpdate {
	_u.mutation.ClearSemesters()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(course.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(course.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(course.FieldCredits, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(course.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(course.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(course.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(course.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Semesters(); ok {
		_spec.SetField(course.FieldSemesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSemesters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldSemesters, value)
		})
	}
	if _u.mutation.SemestersCleared() {
		_spec.ClearField(course.FieldSemesters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetCode sets the "code" field.
func (_u *CourseUpdateOne) SetCode(v string) *CourseUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCode(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CourseUpdateOne) SetSubject(v string) *CourseUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSubject(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdateOne) SetCategory(v string) *CourseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCategory(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *CourseUpdateOne) SetCredits(v string) *CourseUpdateOne {
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCredits(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CourseUpdateOne) SetDifficulty(v int) *CourseUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDifficulty(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CourseUpdateOne) AddDifficulty(v int) *CourseUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *CourseUpdateOne) SetPrerequisites(v json.RawMessage) *CourseUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *CourseUpdateOne) AppendPrerequisites(v json.RawMessage) *CourseUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *CourseUpdateOne) ClearPrerequisites() *CourseUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetSemesters sets the "semesters" field.
func (_u *CourseUpdateOne) SetSemesters(v []string) *CourseUpdateOne {
	_u.mutation.SetSemesters(v)
	return _u
}

// AppendSemesters appends value to the "semesters" field.
func (_u *CourseUpdateOne) AppendSemesters(v []string) *CourseUpdateOne {
	_u.mutation.AppendSemesters(v)
	return _u
}

// ClearSemesters clears the value of the "semesters" field.
func (_u *CourseUpdateOne) ClearSemesters() *CourseUpdateOne {
	_u.mutation.ClearSemesters()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(course.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(course.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(course.FieldCredits, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(course.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(course.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(course.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(course.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Semesters(); ok {
		_spec.SetField(course.FieldSemesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSemesters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldSemesters, value)
		})
	}
	if _u.mutation.SemestersCleared() {
		_spec.ClearField(course.FieldSemesters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
