package tags

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/Sitethief/Docblox/docblock"
)

// ErrInvalidRules indicates a rule file that cannot be read or does not
// follow the rule file format.
var ErrInvalidRules = errors.New("invalid tag rules")

// Rule file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

const tagNamePattern = `^[A-Za-z][A-Za-z0-9_-]*$`

// RuleSet is the content of a rule file. Tags maps tag names to rule kinds
// (see [Kinds]).
//
// In YAML:
//
//	tags:
//	  param-out: variable
//	  api: generic
type RuleSet struct {
	Tags map[string]string `json:"tags" toml:"tags" yaml:"tags"`
}

// LoadRules reads a YAML (.yaml, .yml, .json) or TOML (.toml) rule file and
// returns the [docblock.Registry] it describes.
func LoadRules(path string) (docblock.Registry, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // Rule path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	return ParseRules(data, format)
}

// ParseRules decodes rule file content in the given format, validates it, and
// returns the [docblock.Registry] it describes.
func ParseRules(data []byte, format string) (docblock.Registry, error) {
	var raw any

	switch format {
	case FormatYAML:
		err := yaml.Unmarshal(data, &raw)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidRules, err)
		}

	case FormatTOML:
		var doc map[string]any

		err := toml.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidRules, err)
		}

		raw = doc

	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidRules, format)
	}

	// Round-trip through JSON so the validator only sees JSON value types.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	var instance any

	err = json.Unmarshal(b, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	err = validateRules(instance)
	if err != nil {
		return nil, err
	}

	var rs RuleSet

	err = json.Unmarshal(b, &rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	return rs.Registry(), nil
}

// Registry returns the [docblock.Registry] described by rs. Kinds are
// assumed valid; unknown kinds map to the generic variant.
func (rs RuleSet) Registry() docblock.Registry {
	kinds := Kinds()
	r := make(docblock.Registry, len(rs.Tags))

	for name, kind := range rs.Tags {
		r.Add(kinds[kind], name)
	}

	return r
}

// RulesSchema returns the JSON Schema that rule files are validated against.
func RulesSchema() *jsonschema.Schema {
	names := KindNames()
	kinds := make([]any, 0, len(names))

	for _, k := range names {
		kinds = append(kinds, k)
	}

	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"tags"},
		Properties: map[string]*jsonschema.Schema{
			"tags": {
				Type:          "object",
				PropertyNames: &jsonschema.Schema{Pattern: tagNamePattern},
				AdditionalProperties: &jsonschema.Schema{
					Type: "string",
					Enum: kinds,
				},
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func validateRules(instance any) error {
	resolved, err := RulesSchema().Resolve(nil)
	if err != nil {
		return fmt.Errorf("%w: resolve schema: %w", ErrInvalidRules, err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	return nil
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: unsupported rule file %q", ErrInvalidRules, path)
}
