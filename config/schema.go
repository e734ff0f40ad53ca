/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var configSchema = jsonschema.MustCompileString("tasklists.schema.json", schemaJSON)

// Schema returns the JSON schema config files are validated against.
func Schema() string {
	return schemaJSON
}

// Validate checks cfg against the config schema. Every violation is
// reported, joined under ErrInvalidConfig.
func Validate(cfg *Config) error {
	return validateDocument(cfg)
}

// validateDocument checks any JSON-encodable value against the schema.
// It is round-tripped through JSON first so YAML and TOML scalars reach the
// validator as JSON types.
func validateDocument(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal config for validation: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal config for validation: %w", err)
	}

	err = configSchema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var errs []error
	collectSchemaErrors(ve, &errs)
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]error) {
	if len(ve.Causes) == 0 {
		*errs = append(*errs, fmt.Errorf("%s: %s", pointerToPath(ve.InstanceLocation), ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, errs)
	}
}

// pointerToPath turns "/files/0" into "files[0]".
func pointerToPath(ptr string) string {
	if ptr == "" {
		return "(root)"
	}
	var sb strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			fmt.Fprintf(&sb, "[%s]", part)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}
