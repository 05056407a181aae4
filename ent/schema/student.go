package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Student is a student profile: identity, declared major, completed
// courses, and the per-semester plan.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("email").
			Unique(),
		field.String("netid").
			Default(""),
		field.String("name").
			Default(""),
		field.String("year").
			Default(""),
		field.String("major").
			Default(""),
		field.JSON("interests", []string{}).
			Optional(),
		field.JSON("completed_courses", []string{}).
			Optional(),
		field.JSON("planned_semesters", json.RawMessage{}).
			Optional().
			Comment("Semester plans as JSON; decoded by the planner package"),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("netid"),
	}
}
