package bank

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

var localizedText = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"en": map[string]any{"type": "string", "minLength": 1},
		"zh": map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"en", "zh"},
	"additionalProperties": false,
}

// documentSchema describes the embedded question bank file.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"dimensions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type": "string",
						"enum": []any{"EI", "SN", "TF", "JP"},
					},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text": localizedText,
								"a":    localizedText,
								"b":    localizedText,
							},
							"required":             []any{"text", "a", "b"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "dimensions"},
	"additionalProperties": false,
}

// compileSchema turns documentSchema into a validator.
func compileSchema() (*jsonschema.Schema, error) {
	// The compiler wants plain decoded JSON values.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// checkSchema validates raw bank JSON against documentSchema.
func checkSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
