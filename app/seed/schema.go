package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var compiled struct {
	once   sync.Once
	schema *validator.Schema
	err    error
}

// JSONSchema describes Date as a string holding a day or an RFC3339 timestamp.
func (Date) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}:\d{2}.*)?$`,
		Description: "YYYY-MM-DD or RFC3339 timestamp",
	}
}

// GenerateSchema returns the JSON schema of a seed document.
func GenerateSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&Document{})
	schema.Title = "Shelf Seed Document"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// Verify checks seed data in the format named by ext against the document schema.
// Unlike Import it rejects the whole document on any invalid entry.
func Verify(data []byte, ext string) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	// decode into generic values, then normalize through json so toml dates and
	// yaml integers reach the validator as strings and json numbers
	var raw any
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		err = json.Unmarshal(data, &raw)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &raw)
	case "toml":
		var m map[string]any
		err = toml.Unmarshal(data, &m)
		raw = m
	default:
		return fmt.Errorf("unsupported seed format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse seed: %w", err)
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to normalize seed: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode normalized seed: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("seed validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*validator.Schema, error) {
	compiled.once.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			compiled.err = err
			return
		}
		compiler := validator.NewCompiler()
		if err := compiler.AddResource("schema.json", bytes.NewReader(data)); err != nil {
			compiled.err = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiled.schema, compiled.err = compiler.Compile("schema.json")
		if compiled.err != nil {
			compiled.err = fmt.Errorf("failed to compile schema: %w", compiled.err)
		}
	})
	return compiled.schema, compiled.err
}
