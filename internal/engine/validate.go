package engine

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// paramRanges documents each field's constraint for error messages, keyed by
// struct field name.
var paramRanges = map[string]string{
	"NodeCount":           ">= 1",
	"EdgeDensity":         "in (0, 1]",
	"OverlapPercent":      "in [0, 1]",
	"RecursionDepth":      ">= 1",
	"Rigidity":            "in (0, 1]",
	"BeamWidth":           ">= 1",
	"ActivationThreshold": "in (0, 1)",
	"ContextBlend":        "in [0, 1]",
	"WeightLearningRate":  "in [0, 1]",
	"DriftBias":           "in [0, 1]",
}

var validate = validator.New()

// InvalidParameterError reports the first parameter found outside its
// documented range.
type InvalidParameterError struct {
	Field string
	Value any
}

func (e *InvalidParameterError) Error() string {
	if r, ok := paramRanges[e.Field]; ok {
		return fmt.Sprintf("invalid parameter %s: got %v, want %s", e.Field, e.Value, r)
	}
	return fmt.Sprintf("invalid parameter %s: got %v", e.Field, e.Value)
}

// ValidateParams checks every field of p against its documented range.
// Callers that clamp their inputs (the preset loader, UI layers) can skip
// this; Run always performs it.
func ValidateParams(p Params) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &InvalidParameterError{Field: verrs[0].StructField(), Value: verrs[0].Value()}
	}
	return fmt.Errorf("validate params: %w", err)
}
