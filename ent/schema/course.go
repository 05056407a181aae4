package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is a catalog record. Prerequisites are stored as raw JSON and
// decoded by the catalog package, which tolerates both legacy wire
// shapes.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			Unique().
			Comment("Canonical course code, e.g. CSCI-UA.0101"),
		field.String("title"),
		field.String("subject").
			Default(""),
		field.String("category").
			Default(""),
		field.String("credits").
			Default("4").
			Comment("Stored as text; a few legacy records carry ranges like 1-4"),
		field.Int("difficulty").
			Default(0).
			Comment("1-5, 0 = unrated"),
		field.JSON("prerequisites", json.RawMessage{}).
			Optional().
			Comment("Prerequisite expression in one of the legacy wire shapes"),
		field.JSON("semesters", []string{}).
			Optional().
			Comment("Terms the course is offered in"),
		field.Text("description").
			Default(""),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code"),
		index.Fields("subject"),
		index.Fields("category"),
	}
}
