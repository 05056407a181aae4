// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apatel/gradpath/ent/student"
	"github.com/google/uuid"
)

// StudentCreate is the builder for creating a Student entity.
type StudentCreate struct {
	config
	mutation *StudentMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *StudentCreate) SetEmail(v string) *StudentCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNetid sets the "netid" field.
func (_c *StudentCreate) SetNetid(v string) *StudentCreate {
	_c.mutation.SetNetid(v)
	return _c
}

// SetNillableNetid sets the "netid" field if the given value is not nil.
func (_c *StudentCreate) SetNillableNetid(v *string) *StudentCreate {
	if v != nil {
		_c.SetNetid(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *StudentCreate) SetName(v string) *StudentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *StudentCreate) SetNillableName(v *string) *StudentCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *StudentCreate) SetYear(v string) *StudentCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *StudentCreate) SetNillableYear(v *string) *StudentCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetMajor sets the "major" field.
func (_c *StudentCreate) SetMajor(v string) *StudentCreate {
	_c.mutation.SetMajor(v)
	return _c
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_c *StudentCreate) SetNillableMajor(v *string) *StudentCreate {
	if v != nil {
		_c.SetMajor(*v)
	}
	return _c
}

// SetInterests sets the "interests" field.
func (_c *StudentCreate) SetInterests(v []string) *StudentCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetCompletedCourses sets the "completed_courses" field.
func (_c *StudentCreate) SetCompletedCourses(v []string) *StudentCreate {
	_c.mutation.SetCompletedCourses(v)
	return _c
}

// SetPlannedSemesters sets the "planned_semesters" field.
func (_c *StudentCreate) SetPlannedSemesters(v json.RawMessage) *StudentCreate {
	_c.mutation.SetPlannedSemesters(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StudentCreate) SetID(v uuid.UUID) *StudentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudentCreate) SetNillableID(v *uuid.UUID) *StudentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StudentMutation object of the builder.
func (_c *StudentCreate) Mutation() *StudentMutation {
	return _c.mutation
}

// Save creates the Student in the database.
func (_c *StudentCreate) Save(ctx context.Context) (*Student, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCreate) SaveX(ctx context.Context) *Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCreate) defaults() {
	if _, ok := _c.mutation.Netid(); !ok {
		v := student.DefaultNetid
		_c.mutation.SetNetid(v)
	}
	if _, ok := _c.mutation.Name(); !ok {
		v := student.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Year(); !ok {
		v := student.DefaultYear
		_c.mutation.SetYear(v)
	}
	if _, ok := _c.mutation.Major(); !ok {
		v := student.DefaultMajor
		_c.mutation.SetMajor(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := student.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Student.email"`)}
	}
	if _, ok := _c.mutation.Netid(); !ok {
		return &ValidationError{Name: "netid", err: errors.New(`ent: missing required field "Student.netid"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Student.name"`)}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "Student.year"`)}
	}
	if _, ok := _c.mutation.Major(); !ok {
		return &ValidationError{Name: "major", err: errors.New(`ent: missing required field "Student.major"`)}
	}
	return nil
}

func (_c *StudentCreate) sqlSave(ctx context.Context) (*Student, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentCreate) createSpec() (*Student, *sqlgraph.CreateSpec) {
	var (
		_node = &Student{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(student.Table, sqlgraph.NewFieldSpec(student.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(student.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Netid(); ok {
		_spec.SetField(student.FieldNetid, field.TypeString, value)
		_node.Netid = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(student.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(student.FieldYear, field.TypeString, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Major(); ok {
		_spec.SetField(student.FieldMajor, field.TypeString, value)
		_node.Major = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(student.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.CompletedCourses(); ok {
		_spec.SetField(student.FieldCompletedCourses, field.TypeJSON, value)
		_node.CompletedCourses = value
	}
	if value, ok := _c.mutation.PlannedSemesters(); ok {
		_spec.SetField(student.FieldPlannedSemesters, field.TypeJSON, value)
		_node.PlannedSemesters = value
	}
	return _node, _spec
}

// StudentCreateBulk is the builder for creating many Student entities in bulk.
type StudentCreateBulk struct {
	config
	err      error
	builders []*StudentCreate
}

// Save creates the Student entities in the database.
func (_c *StudentCreateBulk) Save(ctx context.Context) ([]*Student, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Student, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudentCreateBulk) SaveX(ctx context.Context) []*Student {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
