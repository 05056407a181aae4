package recommend

import "github.com/apatel/gradpath/internal/llm"

// RecommendationSchema defines the JSON schema for course
// recommendation responses.
var RecommendationSchema = &llm.Schema{
	Name:        "course-recommendation",
	Description: "A set of recommended courses for one semester, each with reasoning",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"courses": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"course_code": map[string]any{
							"type":        "string",
							"description": "Canonical course code, e.g. CSCI-UA.0101",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Course title",
						},
						"credits": map[string]any{
							"type":        "integer",
							"description": "Credit count",
						},
						"reasoning": map[string]any{
							"type":        "string",
							"description": "Why this course fits the student's major, career path, and interests",
						},
					},
					"required":             []any{"course_code", "title", "credits", "reasoning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"courses"},
		"additionalProperties": false,
	},
}
