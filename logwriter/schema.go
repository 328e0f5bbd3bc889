package logwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rickchristie/drift"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchemaJSON is the artifact contract: an array of records, each with
// the three non-negative integer fields and nothing else.
const recordSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"t":       {"type": "integer", "minimum": 0},
			"ctx_len": {"type": "integer", "minimum": 0},
			"omega":   {"type": "integer", "minimum": 0}
		},
		"required": ["t", "ctx_len", "omega"],
		"additionalProperties": false
	}
}`

// recordSchema is compiled once at package load.
var recordSchema = mustCompileRecordSchema()

func mustCompileRecordSchema() *jsonschema.Schema {
	schemaData, err := jsonschema.UnmarshalJSON(strings.NewReader(recordSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("logwriter: parse record schema: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("records.json", schemaData); err != nil {
		panic(fmt.Sprintf("logwriter: add record schema resource: %v", err))
	}

	compiled, err := c.Compile("records.json")
	if err != nil {
		panic(fmt.Sprintf("logwriter: compile record schema: %v", err))
	}
	return compiled
}

// validateRecords checks the record list against the artifact schema.
// Returns nil when valid.
func validateRecords(records []drift.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records for validation: %w", err)
	}

	decoded, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode records for validation: %w", err)
	}

	if err := recordSchema.Validate(decoded); err != nil {
		return fmt.Errorf("record schema validation failed: %w", err)
	}
	return nil
}
