package settings

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the settings snapshot schema.
const SchemaID = "https://github.com/randalmurphal/llmconf/settings.schema.json"

// JSONSchema returns the JSON Schema of the persisted snapshot, for editors
// and external validation of hand-written settings files.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&State{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "llmconf settings"
	schema.Description = "Persisted LLM provider settings: credentials, generation parameters, cost and window overrides."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings schema: %w", err)
	}
	return data, nil
}
