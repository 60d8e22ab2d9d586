// Package insight guards the contract between the extraction engine and the
// persistence sink: every envelope is validated against a JSON Schema before
// it is stored as an opaque payload.
package insight

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed envelope_schema.json
var envelopeSchemaSource string

// The schema is trusted, versioned configuration; failing to compile it is a
// programming error, not a runtime condition.
var envelopeSchema = jsonschema.MustCompileString("envelope_schema.json", envelopeSchemaSource)

// ValidateEnvelope checks that data is a well-formed extraction envelope:
// a version tag plus a non-empty nutrients or mentions mapping whose match
// lists are non-empty.
func ValidateEnvelope(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if err := envelopeSchema.Validate(v); err != nil {
		return fmt.Errorf("envelope does not match schema: %w", err)
	}
	return nil
}
