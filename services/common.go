package services

import (
	"strings"

	"CareSphere/config"
	"CareSphere/utils"
)

var (
	cfg    *config.Config
	mailer Mailer = disabledMailer{}
)

// Init wires the package-level config and mail transport once at startup.
func Init(c *config.Config, m Mailer) {
	cfg = c
	if m != nil {
		mailer = m
	}
}

/*
* Require a non-empty string field in the request document
* Trims in place so downstream readers see the cleaned value
 */
func getTrimmedString(data map[string]interface{}, field string) (string, error) {
	raw, ok := data[field]
	if !ok {
		return "", utils.BadRequest(field + " is required")
	}
	value, ok := raw.(string)
	if !ok {
		return "", utils.BadRequest(field + " must be a string")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", utils.BadRequest(field + " is required")
	}
	data[field] = value
	return value, nil
}

// trimIfExists cleans an optional string field, failing only when the field
// is present but blank or mistyped.
func trimIfExists(data map[string]interface{}, field string) error {
	raw, ok := data[field]
	if !ok {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return utils.BadRequest(field + " must be a string")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return utils.BadRequest(field + " must not be empty")
	}
	data[field] = value
	return nil
}

func stringOr(data map[string]interface{}, field, fallback string) string {
	if v, ok := data[field].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// floatField reads an optional numeric field. Absent falls back; present
// but non-numeric is rejected instead of silently dropped.
func floatField(data map[string]interface{}, field string, fallback float64) (float64, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return fallback, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, utils.BadRequest(field + " must be a number")
}
