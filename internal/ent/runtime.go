// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wilhg/viewstore/internal/ent/record"
	"github.com/wilhg/viewstore/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	recordFields := schema.Record{}.Fields()
	_ = recordFields
	// recordDescNamespace is the schema descriptor for namespace field.
	recordDescNamespace := recordFields[0].Descriptor()
	// record.NamespaceValidator is a validator for the "namespace" field. It is called by the builders before save.
	record.NamespaceValidator = recordDescNamespace.Validators[0].(func(string) error)
	// recordDescRecordKey is the schema descriptor for record_key field.
	recordDescRecordKey := recordFields[1].Descriptor()
	// record.RecordKeyValidator is a validator for the "record_key" field. It is called by the builders before save.
	record.RecordKeyValidator = recordDescRecordKey.Validators[0].(func(string) error)
	// recordDescUpdatedAt is the schema descriptor for updated_at field.
	recordDescUpdatedAt := recordFields[3].Descriptor()
	// record.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	record.DefaultUpdatedAt = recordDescUpdatedAt.Default.(func() time.Time)
	// record.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	record.UpdateDefaultUpdatedAt = recordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
