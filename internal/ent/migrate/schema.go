// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RecordsColumns holds the columns for the "records" table.
	RecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "namespace", Type: field.TypeString},
		{Name: "record_key", Type: field.TypeString},
		{Name: "value", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
	}
	// RecordsTable holds the schema information for the "records" table.
	RecordsTable = &schema.Table{
		Name:       "records",
		Columns:    RecordsColumns,
		PrimaryKey: []*schema.Column{RecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "record_namespace_record_key",
				Unique:  true,
				Columns: []*schema.Column{RecordsColumns[1], RecordsColumns[2]},
			},
			{
				Name:    "record_namespace",
				Unique:  false,
				Columns: []*schema.Column{RecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RecordsTable,
	}
)

func init() {
}
