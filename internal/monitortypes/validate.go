package monitortypes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationResult is the outcome of validating a raw form-data bag.
// Validation failures are returned as messages, never as errors.
type ValidationResult struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// Base fields shared by every monitor type. Validated only when present.
var baseFields = []FieldDefinition{
	{Name: "check_interval", Label: "Check interval", Type: FieldNumber},
	{Name: "timeout", Label: "Timeout", Type: FieldNumber},
	{Name: "retry_attempts", Label: "Retry attempts", Type: FieldNumber},
}

// ValidateMonitorFormData checks a raw field-value bag against the schema
// for the given monitor type. Wrong-typed values count as missing, so a
// required field submitted with the wrong type reports the same
// "<Label> is required" message. Unknown monitor types fall through to
// base-field validation only. A nil bag always fails.
func ValidateMonitorFormData(monitorType string, data map[string]interface{}) ValidationResult {
	if data == nil {
		return ValidationResult{
			Success: false,
			Errors:  []string{"Monitor data is required"},
		}
	}

	var errs []string

	if cfg, ok := GetMonitorType(monitorType); ok {
		for _, field := range cfg.Fields {
			errs = append(errs, validateField(field, data)...)
		}
	}

	for _, field := range baseFields {
		if _, present := data[field.Name]; present {
			errs = append(errs, validateField(field, data)...)
		}
	}

	return ValidationResult{Success: len(errs) == 0, Errors: errs}
}

func validateField(field FieldDefinition, data map[string]interface{}) []string {
	value, present := data[field.Name]

	switch field.Type {
	case FieldText, FieldURL, FieldSelect:
		return validateStringField(field, value, present)
	case FieldNumber:
		return validateNumberField(field, value, present)
	default:
		return nil
	}
}

func validateStringField(field FieldDefinition, value interface{}, present bool) []string {
	s, ok := value.(string)

	if !present || !ok || strings.TrimSpace(s) == "" {
		if field.Required {
			return []string{field.Label + " is required"}
		}

		// Optional fields are ignored when missing, blank, or wrong-typed.
		return nil
	}

	if field.Type == FieldSelect && len(field.Options) > 0 {
		for _, option := range field.Options {
			if strings.EqualFold(s, option) {
				return nil
			}
		}

		return []string{fmt.Sprintf("%s must be one of: %s", field.Label, strings.Join(field.Options, ", "))}
	}

	return nil
}

func validateNumberField(field FieldDefinition, value interface{}, present bool) []string {
	n, ok := asNumber(value)

	if !present || !ok {
		if field.Required {
			return []string{field.Label + " is required"}
		}

		return nil
	}

	if field.Min != nil && n < *field.Min {
		return []string{fmt.Sprintf("%s must be at least %v", field.Label, *field.Min)}
	}

	if field.Max != nil && n > *field.Max {
		return []string{fmt.Sprintf("%s must be at most %v", field.Label, *field.Max)}
	}

	if field.Min == nil && n <= 0 {
		return []string{field.Label + " must be a positive number"}
	}

	return nil
}

func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
