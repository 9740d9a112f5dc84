// Package config holds the runtime configuration of cryfa.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Suffixes control the names of files written in write mode.
type Suffixes struct {
	// Encrypt is appended to encrypted files and stripped on decryption.
	Encrypt string `mapstructure:"encrypt-ext" validate:"required,startswith=." label:"--encrypt-ext"`
	// Decrypt is appended to decrypted files.
	Decrypt string `mapstructure:"decrypt-ext" label:"--decrypt-ext"`
}

// Config is populated from flags and CRYFA_* environment variables.
type Config struct {
	// Key is the path to the key file holding the password.
	Key string `mapstructure:"key" validate:"required" label:"--key"`

	// Decrypt selects the decrypt pipeline.
	Decrypt bool `mapstructure:"decrypt"`
	// Verbose enables size and key diagnostics on stderr.
	Verbose bool `mapstructure:"verbose" label:"--verbose"`
	// Quiet suppresses progress output.
	Quiet bool `mapstructure:"quiet" validate:"exclusive=Verbose" label:"--quiet"`

	// Write writes output files next to the inputs instead of stdout.
	Write bool `mapstructure:"write" label:"--write"`
	// Parallel bounds concurrent files in write mode.
	Parallel int `mapstructure:"parallel" validate:"gte=1" label:"--parallel"`
	// Delete removes each input after its output is written.
	Delete bool `mapstructure:"delete" validate:"excluded_without=Write" label:"--delete"`
	// PreserveTimestamps copies the modification time of inputs to outputs.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps" validate:"excluded_without=Write" label:"--preserve-timestamps"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Include and Exclude filter files found while walking directories.
	Include     []string `mapstructure:"include"`
	Exclude     []string `mapstructure:"exclude"`
	IncludeFrom string   `mapstructure:"include-from" validate:"omitempty,file" label:"--include-from"`
	ExcludeFrom string   `mapstructure:"exclude-from" validate:"omitempty,file" label:"--exclude-from"`

	Stats bool `mapstructure:"stats"`
	Dry   bool `mapstructure:"dry"`

	// Positional arguments
	Files []string `validate:"min=1" label:"files"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return fmt.Errorf("validating configuration: %s", describe(errs[0]))
		}

		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// describe renders a validation failure as a short sentence.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "exclusive":
		return fe.Field() + " is mutually exclusive with " + fe.Param()
	case "excluded_without":
		return fe.Field() + " requires --write"
	case "min":
		return "at least one input file is required"
	case "file":
		return fe.Field() + " must be an existing file"
	default:
		return fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
	}
}
