package review

import "feynread/internal/llm"

// teachingReviewSchema constrains the teaching-essay grading output.
var teachingReviewSchema = &llm.Schema{
	Name:        "teaching-review",
	Description: "Grading of a reader's explanation of a book",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"review":       map[string]any{"type": "string"},
			"accuracy":     scoreProperty,
			"completeness": scoreProperty,
			"clarity":      scoreProperty,
			"overall":      scoreProperty,
		},
		"required":             []any{"review", "accuracy", "completeness", "clarity", "overall"},
		"additionalProperties": false,
	},
}

// questionBatchSchema constrains persona question generation.
var questionBatchSchema = &llm.Schema{
	Name:        "persona-questions",
	Description: "One challenge question per persona",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
					},
					"required":             []any{"question"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// answerReviewSchema constrains answer grading output.
var answerReviewSchema = &llm.Schema{
	Name:        "answer-review",
	Description: "Grading of a reader's answer to a challenge question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"review": map[string]any{"type": "string"},
			"score":  scoreProperty,
		},
		"required":             []any{"review", "score"},
		"additionalProperties": false,
	},
}

var scoreProperty = map[string]any{
	"type":    "integer",
	"minimum": 0,
	"maximum": 100,
}
