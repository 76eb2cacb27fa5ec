package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, so messages name the keys
// users actually write in configs/*.yaml.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}

		return name
	})

	return v
}

// Validate checks every section and reports all problems at once. The
// process must not start on a failing config.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		problems = append(problems, describe(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// describe renders one failed rule as "<key> <problem>", followed by the
// environment variable that overrides the key when one exists.
func describe(e validator.FieldError) string {
	key := keyPath(e.Namespace())

	var problem string

	switch e.Tag() {
	case "required":
		problem = "is required"
	case "required_if":
		field, value, _ := strings.Cut(e.Param(), " ")
		problem = fmt.Sprintf("is required when %s is %s", keyName(field), value)
	case "required_with":
		problem = fmt.Sprintf("is required when %s is set", keyName(e.Param()))
	case "min":
		problem = "must be at least " + e.Param()
	case "max":
		problem = "must be at most " + e.Param()
	case "oneof":
		problem = "must be one of: " + e.Param()
	case "url":
		problem = "must be a valid URL"
	default:
		problem = "failed validation: " + e.Tag()
	}

	if env := envVar(key); env != "" {
		return fmt.Sprintf("%s %s (%s)", key, problem, env)
	}

	return key + " " + problem
}

// keyPath turns "Config.sync.policy" into "sync.policy".
func keyPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return strings.ToLower(namespace)
	}

	return rest
}

// keyName maps a Go field name used in a rule parameter to its key.
func keyName(field string) string {
	return strings.ToLower(field)
}

// envVar returns the APP_ variable that overrides key. Keys containing an
// underscore cannot be reached from the environment.
func envVar(key string) string {
	if strings.Contains(key, "_") {
		return ""
	}

	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
