package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance. Field names are reported
// by their koanf key so messages match the YAML and env var names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks the loaded configuration. The service refuses to start on
// any failure; every failing field is listed with the env var that sets it.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		key := formatFieldPath(fe.Namespace())
		lines[i] = fmt.Sprintf("%s (%s)", describe(key, fe), envName(key))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// fieldMessages holds the message per validation tag. The first %s is the
// field key, the second the tag parameter.
var fieldMessages = map[string]string{
	"required":    "%s is required",
	"required_if": "%s is required when %s",
	"min":         "%s must be at least %s",
	"max":         "%s must be at most %s",
	"oneof":       "%s must be one of: %s",
	"url":         "%s must be a valid URL",
	"timezone":    "%s must be an IANA time zone name",
}

func describe(key string, fe validator.FieldError) string {
	if fe.Tag() == "ltfield" {
		return fmt.Sprintf("%s must be less than %s", key, formatFieldPath(fe.Param()))
	}

	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
	}

	if strings.Count(msg, "%s") == 1 {
		return fmt.Sprintf(msg, key)
	}

	return fmt.Sprintf(msg, key, fe.Param())
}

// envName is the inverse of envKey: feed.source_id becomes APP_FEED__SOURCE_ID.
func envName(key string) string {
	return "APP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

// formatFieldPath turns a validator namespace such as "Config.server.port"
// into the koanf key "server.port".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}

	return strings.ToLower(namespace)
}
