package bank

// catalogSchema defines the JSON schema the embedded catalog must satisfy.
// Violations fail Load, once, at startup.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "name"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": "string", "minLength": 1},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"beginner", "intermediate", "senior", "expert"},
					},
					"format": map[string]any{
						"type": "string",
						"enum": []any{"essay", "multiple-choice"},
					},
					"prompt":  map[string]any{"type": "string", "minLength": 1},
					"answer":  map[string]any{"type": "string", "minLength": 1},
					"example": map[string]any{"type": "string"},
					"choices": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"text":      map[string]any{"type": "string", "minLength": 1},
								"isCorrect": map[string]any{"type": "boolean"},
							},
							"required":             []any{"id", "text", "isCorrect"},
							"additionalProperties": false,
						},
					},
					"estMinutes": map[string]any{"type": "integer", "minimum": 1},
				},
				"required":             []any{"id", "category", "difficulty", "format", "prompt", "answer", "estMinutes"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"categories", "questions"},
	"additionalProperties": false,
}
