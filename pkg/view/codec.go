package view

import (
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/wilhg/viewstore/pkg/errmodel"
)

// Codec converts views to and from their stored byte representation.
// Implementations must be lossless for every view the repository is used
// with: Unmarshal(Marshal(v)) must reproduce v.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default codec, backed by encoding/json.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// SchemaCodec is a JSON codec that additionally validates every instance
// against a JSON Schema: on Marshal before the bytes leave the process, and
// on Unmarshal before the decoded value reaches the caller. Schema
// violations surface as validation-category errors. Useful when a view's
// shape is shared with other consumers of the same namespace.
type SchemaCodec struct {
	schema *jsonschema.Schema
}

// NewSchemaCodec compiles schema once and returns a validating codec.
func NewSchemaCodec(schema []byte) (*SchemaCodec, error) {
	c := jsonschema.NewCompiler()
	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return nil, err
	}
	if err := c.AddResource("mem://schema.json", doc); err != nil {
		return nil, err
	}
	sch, err := c.Compile("mem://schema.json")
	if err != nil {
		return nil, err
	}
	return &SchemaCodec{schema: sch}, nil
}

func (c *SchemaCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if err := c.validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *SchemaCodec) Unmarshal(data []byte, v any) error {
	if err := c.validate(data); err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (c *SchemaCodec) validate(data []byte) error {
	var inst any
	if err := json.Unmarshal(data, &inst); err != nil {
		return err
	}
	if err := c.schema.Validate(inst); err != nil {
		return errmodel.Validation("schema_violation", err.Error(), nil)
	}
	return nil
}
