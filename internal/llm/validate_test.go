package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "validate-test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
		},
		"required":             []string{"score"},
		"additionalProperties": false,
	},
}

func TestValidateAgainst(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"score":85}`, false},
		{"missing required", `{}`, true},
		{"out of range", `{"score":150}`, true},
		{"wrong type", `{"score":"high"}`, true},
		{"extra property", `{"score":1,"note":"x"}`, true},
		{"not JSON at all", `score: 85`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAgainst(testSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateAgainst() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("err = %T, want *ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateAgainstNilSchema(t *testing.T) {
	if err := validateAgainst(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema must validate anything, got %v", err)
	}
}
