// Code generated by ent, DO NOT EDIT.

package record

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wilhg/viewstore/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldID, id))
}

// Namespace applies equality check predicate on the "namespace" field. It's identical to NamespaceEQ.
func Namespace(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldNamespace, v))
}

// RecordKey applies equality check predicate on the "record_key" field. It's identical to RecordKeyEQ.
func RecordKey(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldRecordKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v []byte) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldValue, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldUpdatedAt, v))
}

// NamespaceEQ applies the EQ predicate on the "namespace" field.
func NamespaceEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldNamespace, v))
}

// NamespaceNEQ applies the NEQ predicate on the "namespace" field.
func NamespaceNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldNamespace, v))
}

// NamespaceIn applies the In predicate on the "namespace" field.
func NamespaceIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldNamespace, vs...))
}

// NamespaceNotIn applies the NotIn predicate on the "namespace" field.
func NamespaceNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldNamespace, vs...))
}

// NamespaceGT applies the GT predicate on the "namespace" field.
func NamespaceGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldNamespace, v))
}

// NamespaceGTE applies the GTE predicate on the "namespace" field.
func NamespaceGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldNamespace, v))
}

// NamespaceLT applies the LT predicate on the "namespace" field.
func NamespaceLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldNamespace, v))
}

// NamespaceLTE applies the LTE predicate on the "namespace" field.
func NamespaceLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldNamespace, v))
}

// NamespaceContains applies the Contains predicate on the "namespace" field.
func NamespaceContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldNamespace, v))
}

// NamespaceHasPrefix applies the HasPrefix predicate on the "namespace" field.
func NamespaceHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldNamespace, v))
}

// NamespaceHasSuffix applies the HasSuffix predicate on the "namespace" field.
func NamespaceHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldNamespace, v))
}

// NamespaceEqualFold applies the EqualFold predicate on the "namespace" field.
func NamespaceEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldNamespace, v))
}

// NamespaceContainsFold applies the ContainsFold predicate on the "namespace" field.
func NamespaceContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldNamespace, v))
}

// RecordKeyEQ applies the EQ predicate on the "record_key" field.
func RecordKeyEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldRecordKey, v))
}

// RecordKeyNEQ applies the NEQ predicate on the "record_key" field.
func RecordKeyNEQ(v string) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldRecordKey, v))
}

// RecordKeyIn applies the In predicate on the "record_key" field.
func RecordKeyIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldRecordKey, vs...))
}

// RecordKeyNotIn applies the NotIn predicate on the "record_key" field.
func RecordKeyNotIn(vs ...string) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldRecordKey, vs...))
}

// RecordKeyGT applies the GT predicate on the "record_key" field.
func RecordKeyGT(v string) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldRecordKey, v))
}

// RecordKeyGTE applies the GTE predicate on the "record_key" field.
func RecordKeyGTE(v string) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldRecordKey, v))
}

// RecordKeyLT applies the LT predicate on the "record_key" field.
func RecordKeyLT(v string) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldRecordKey, v))
}

// RecordKeyLTE applies the LTE predicate on the "record_key" field.
func RecordKeyLTE(v string) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldRecordKey, v))
}

// RecordKeyContains applies the Contains predicate on the "record_key" field.
func RecordKeyContains(v string) predicate.Record {
	return predicate.Record(sql.FieldContains(FieldRecordKey, v))
}

// RecordKeyHasPrefix applies the HasPrefix predicate on the "record_key" field.
func RecordKeyHasPrefix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasPrefix(FieldRecordKey, v))
}

// RecordKeyHasSuffix applies the HasSuffix predicate on the "record_key" field.
func RecordKeyHasSuffix(v string) predicate.Record {
	return predicate.Record(sql.FieldHasSuffix(FieldRecordKey, v))
}

// RecordKeyEqualFold applies the EqualFold predicate on the "record_key" field.
func RecordKeyEqualFold(v string) predicate.Record {
	return predicate.Record(sql.FieldEqualFold(FieldRecordKey, v))
}

// RecordKeyContainsFold applies the ContainsFold predicate on the "record_key" field.
func RecordKeyContainsFold(v string) predicate.Record {
	return predicate.Record(sql.FieldContainsFold(FieldRecordKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v []byte) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v []byte) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...[]byte) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...[]byte) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v []byte) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v []byte) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v []byte) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v []byte) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldValue, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Record {
	return predicate.Record(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Record {
	return predicate.Record(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Record {
	return predicate.Record(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Record) predicate.Record {
	return predicate.Record(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Record) predicate.Record {
	return predicate.Record(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Record) predicate.Record {
	return predicate.Record(sql.NotPredicates(p))
}
