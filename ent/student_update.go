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
	"github.com/apatel/gradpath/ent/predicate"
	"github.com/apatel/gradpath/ent/student"
)

// StudentUpdate is the builder for updating Student entities.
type StudentUpdate struct {
	config
	hooks    []Hook
	mutation *StudentMutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdate) Where(ps ...predicate.Student) *StudentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *StudentUpdate) SetEmail(v string) *StudentUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableEmail(v *string) *StudentUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetNetid sets the "netid" field.
func (_u *StudentUpdate) SetNetid(v string) *StudentUpdate {
	_u.mutation.SetNetid(v)
	return _u
}

// SetNillableNetid sets the "netid" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableNetid(v *string) *StudentUpdate {
	if v != nil {
		_u.SetNetid(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StudentUpdate) SetName(v string) *StudentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableName(v *string) *StudentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *StudentUpdate) SetYear(v string) *StudentUpdate {
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableYear(v *string) *StudentUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// SetMajor sets the "major" field.
func (_u *StudentUpdate) SetMajor(v string) *StudentUpdate {
	_u.mutation.SetMajor(v)
	return _u
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_u *StudentUpdate) SetNillableMajor(v *string) *StudentUpdate {
	if v != nil {
		_u.SetMajor(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *StudentUpdate) SetInterests(v []string) *StudentUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *StudentUpdate) AppendInterests(v []string) *StudentUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *StudentUpdate) ClearInterests() *StudentUpdate {
	_u.mutation.ClearInterests()
	return _u
}

// SetCompletedCourses sets the "completed_courses" field.
func (_u *StudentUpdate) SetCompletedCourses(v []string) *StudentUpdate {
	_u.mutation.SetCompletedCourses(v)
	return _u
}

// AppendCompletedCourses appends value to the "completed_courses" field.
func (_u *StudentUpdate) AppendCompletedCourses(v []string) *StudentUpdate {
	_u.mutation.AppendCompletedCourses(v)
	return _u
}

// ClearCompletedCourses clears the value of the "completed_courses" field.
func (_u *StudentUpdate) ClearCompletedCourses() *StudentUpdate {
	_u.mutation.ClearCompletedCourses()
	return _u
}

// SetPlannedSemesters sets the "planned_semesters" field.
func (_u *StudentUpdate) SetPlannedSemesters(v json.RawMessage) *StudentUpdate {
	_u.mutation.SetPlannedSemesters(v)
	return _u
}

// AppendPlannedSemesters appends value to the "planned_semesters" field.
func (_u *StudentUpdate) AppendPlannedSemesters(v json.RawMessage) *StudentUpdate {
	_u.mutation.AppendPlannedSemesters(v)
	return _u
}

// ClearPlannedSemesters clears the value of the "planned_semesters" field.
func (_u *StudentUpdate) ClearPlannedSemesters() *StudentUpdate {
	_u.mutation.ClearPlannedSemesters()
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdate) Mutation() *StudentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(student.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Netid(); ok {
		_spec.SetField(student.FieldNetid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(student.FieldYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.Major(); ok {
		_spec.SetField(student.FieldMajor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(student.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(student.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedCourses(); ok {
		_spec.SetField(student.FieldCompletedCourses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedCourses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldCompletedCourses, value)
		})
	}
	if _u.mutation.CompletedCoursesCleared() {
		_spec.ClearField(student.FieldCompletedCourses, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlannedSemesters(); ok {
		_spec.SetField(student.FieldPlannedSemesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlannedSemesters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldPlannedSemesters, value)
		})
	}
	if _u.mutation.PlannedSemestersCleared() {
		_spec.ClearField(student.FieldPlannedSemesters, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentUpdateOne is the builder for updating a single Student entity.
type StudentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentMutation
}

// SetEmail sets the "email" field.
func (_u *StudentUpdateOne) SetEmail(v string) *StudentUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableEmail(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetNetid sets the "netid" field.
func (_u *StudentUpdateOne) SetNetid(v string) *StudentUpdateOne {
	_u.mutation.SetNetid(v)
	return _u
}

// SetNillableNetid sets the "netid" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableNetid(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetNetid(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *StudentUpdateOne) SetName(v string) *StudentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableName(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *StudentUpdateOne) SetYear(v string) *StudentUpdateOne {
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableYear(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// SetMajor sets the "major" field.
func (_u *StudentUpdateOne) SetMajor(v string) *StudentUpdateOne {
	_u.mutation.SetMajor(v)
	return _u
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_u *StudentUpdateOne) SetNillableMajor(v *string) *StudentUpdateOne {
	if v != nil {
		_u.SetMajor(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *StudentUpdateOne) SetInterests(v []string) *StudentUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *StudentUpdateOne) AppendInterests(v []string) *StudentUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *StudentUpdateOne) ClearInterests() *StudentUpdateOne {
	_u.mutation.ClearInterests()
	return _u
}

// SetCompletedCourses sets the "completed_courses" field.
func (_u *StudentUpdateOne) SetCompletedCourses(v []string) *StudentUpdateOne {
	_u.mutation.SetCompletedCourses(v)
	return _u
}

// AppendCompletedCourses appends value to the "completed_courses" field.
func (_u *StudentUpdateOne) AppendCompletedCourses(v []string) *StudentUpdateOne {
	_u.mutation.AppendCompletedCourses(v)
	return _u
}

// ClearCompletedCourses clears the value of the "completed_courses" field.
func (_u *StudentUpdateOne) ClearCompletedCourses() *StudentUpdateOne {
	_u.mutation.ClearCompletedCourses()
	return _u
}

// SetPlannedSemesters sets the "planned_semesters" field.
func (_u *StudentUpdateOne) SetPlannedSemesters(v json.RawMessage) *StudentUpdateOne {
	_u.mutation.SetPlannedSemesters(v)
	return _u
}

// AppendPlannedSemesters appends value to the "planned_semesters" field.
func (_u *StudentUpdateOne) AppendPlannedSemesters(v json.RawMessage) *StudentUpdateOne {
	_u.mutation.AppendPlannedSemesters(v)
	return _u
}

// ClearPlannedSemesters clears the value of the "planned_semesters" field.
func (_u *StudentUpdateOne) ClearPlannedSemesters() *StudentUpdateOne {
	_u.mutation.ClearPlannedSemesters()
	return _u
}

// Mutation returns the StudentMutation object of the builder.
func (_u *StudentUpdateOne) Mutation() *StudentMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentUpdate builder.
func (_u *StudentUpdateOne) Where(ps ...predicate.Student) *StudentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentUpdateOne) Select(field string, fields ...string) *StudentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Student entity.
func (_u *StudentUpdateOne) Save(ctx context.Context) (*Student, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentUpdateOne) SaveX(ctx context.Context) *Student {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StudentUpdateOne) sqlSave(ctx context.Context) (_node *Student, err error) {
	_spec := sqlgraph.NewUpdateSpec(student.Table, student.Columns, sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Student.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, student.FieldID)
		for _, f := range fields {
			if !student.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != student.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(student.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Netid(); ok {
		_spec.SetField(student.FieldNetid, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(student.FieldYear, field.TypeString, value)
	}
	if value, ok := _u.mutation.Major(); ok {
		_spec.SetField(student.FieldMajor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(student.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(student.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedCourses(); ok {
		_spec.SetField(student.FieldCompletedCourses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedCourses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldCompletedCourses, value)
		})
	}
	if _u.mutation.CompletedCoursesCleared() {
		_spec.ClearField(student.FieldCompletedCourses, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlannedSemesters(); ok {
		_spec.SetField(student.FieldPlannedSemesters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlannedSemesters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, student.FieldPlannedSemesters, value)
		})
	}
	if _u.mutation.PlannedSemestersCleared() {
		_spec.ClearField(student.FieldPlannedSemesters, field.TypeJSON)
	}
	_node = &Student{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{student.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
