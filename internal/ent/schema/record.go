package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record holds one serialized view per (namespace, record_key) pair.
type Record struct{ ent.Schema }

// Fields of the Record.
func (Record) Fields() []ent.Field {
	return []ent.Field{
		// Namespace is the view type name; one namespace per repository.
		field.String("namespace").NotEmpty(),
		field.String("record_key").NotEmpty(),
		// Serialized view bytes; opaque to the store.
		field.Bytes("value"),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now).SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the Record.
func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("namespace", "record_key").Unique(),
		index.Fields("namespace"),
	}
}
