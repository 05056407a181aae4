// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apatel/gradpath/ent/course"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *CourseCreate) SetCode(v string) *CourseCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CourseCreate) SetTitle(v string) *CourseCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *CourseCreate) SetSubject(v string) *CourseCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *CourseCreate) SetNillableSubject(v *string) *CourseCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *CourseCreate) SetCategory(v string) *CourseCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCategory(v *string) *CourseCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCredits sets the "credits" field.
func (_c *CourseCreate) SetCredits(v string) *CourseCreate {
	_c.mutation.SetCredits(v)
	return _c
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCredits(v *string) *CourseCreate {
	if v != nil {
		_c.SetCredits(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CourseCreate) SetDifficulty(v int) *CourseCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDifficulty(v *int) *CourseCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *CourseCreate) SetPrerequisites(v json.RawMessage) *CourseCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetSemesters sets the "semesters" field.
func (_c *CourseCreate) SetSemesters(v []string) *CourseCreate {
	_c.mutation.SetSemesters(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.Subject(); !ok {
		v := course.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := course.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Credits(); !ok {
		v := course.DefaultCredits
		_c.mutation.SetCredits(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := course.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := course.DefaultDescription
		_c.mutation.SetDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Course.code"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Course.title"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Course.subject"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Course.category"`)}
	}
	if _, ok := _c.mutation.Credits(); !ok {
		return &ValidationError{Name: "credits", err: errors.New(`ent: missing required field "Course.credits"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Course.difficulty"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Course.description"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(course.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(course.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Credits(); ok {
		_spec.SetField(course.FieldCredits, field.TypeString, value)
		_node.Credits = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(course.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(course.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.Semesters(); ok {
		_spec.SetField(course.FieldSemesters, field.TypeJSON, value)
		_node.Semesters = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
