package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/onboarding.json
var onboardingSchemaJSON []byte

//go:embed schemas/assistant.json
var assistantSchemaJSON []byte

var (
	onboardingSchema = mustSchema(onboardingSchemaJSON)
	assistantSchema  = mustSchema(assistantSchemaJSON)
)

func mustSchema(b []byte) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		panic(fmt.Sprintf("compile embedded schema: %v", err))
	}
	return rs
}

// validatePayload checks body against the schema; a non-nil error describes
// the first violation.
func validatePayload(ctx context.Context, rs *jsonschema.Schema, body []byte) error {
	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return err
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("%s: %s", keyErrs[0].PropertyPath, keyErrs[0].Message)
	}
	return nil
}
