// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// Validate checks `validate` struct tags on target.
func Validate(target any) error {
	if err := validate.Struct(target); err != nil {
		return errors.Wrap(err, "validate config")
	}
	return nil
}
