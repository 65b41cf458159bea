package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// EncodeConfig serializes a config payload to indented UTF-8 JSON text.
func EncodeConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("layout: encode config: %w", err)
	}
	return string(data), nil
}

// EncodeFabric serializes a fabric payload to indented UTF-8 JSON text.
func EncodeFabric(payload Fabric) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("layout: encode fabric: %w", err)
	}
	return string(data), nil
}

// DecodeConfig parses a persisted config payload. The payload may be JSON or
// YAML; YAML documents are normalised through JSON before validation. The
// decoded document is checked against the config schema and each field is
// re-validated before being returned.
func DecodeConfig(raw []byte) (Config, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Config{}, errors.New("layout: config payload is empty")
	}

	jsonRaw, err := normalizeToJSON(raw)
	if err != nil {
		return Config{}, err
	}

	var generic any
	if err := json.Unmarshal(jsonRaw, &generic); err != nil {
		return Config{}, fmt.Errorf("layout: parse config: %w", err)
	}
	if err := configSchema().VisitJSON(generic); err != nil {
		return Config{}, fmt.Errorf("layout: config payload failed schema validation: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonRaw, &cfg); err != nil {
		return Config{}, fmt.Errorf("layout: decode config: %w", err)
	}
	if cfg.Version != ConfigVersion {
		return Config{}, fmt.Errorf("layout: unsupported config version %q", cfg.Version)
	}
	if _, err := FieldsFromConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalizeToJSON sniffs the payload: JSON documents pass through untouched,
// anything else is parsed as YAML and re-marshalled to JSON so a single
// validation path covers both encodings.
func normalizeToJSON(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return trimmed, nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("layout: parse yaml config: %w", err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("layout: convert yaml config: %w", err)
	}
	return data, nil
}

// configSchema describes the config payload contract. Built once; the
// openapi3 schema is treated as immutable after construction.
func configSchema() *openapi3.Schema {
	position := openapi3.NewObjectSchema().
		WithProperty("x", openapi3.NewFloat64Schema()).
		WithProperty("y", openapi3.NewFloat64Schema())
	position.Required = []string{"x", "y"}

	size := openapi3.NewObjectSchema().
		WithProperty("width", openapi3.NewFloat64Schema().WithMin(0)).
		WithProperty("height", openapi3.NewFloat64Schema().WithMin(0))
	size.Required = []string{"width", "height"}

	captureOptions := openapi3.NewObjectSchema().
		WithProperty("video", openapi3.NewBoolSchema()).
		WithProperty("audio", openapi3.NewBoolSchema()).
		WithProperty("image", openapi3.NewBoolSchema()).
		WithProperty("signature", openapi3.NewBoolSchema())
	captureOptions.Required = []string{"video", "audio", "image", "signature"}

	fieldSchema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("type", openapi3.NewStringSchema().
			WithEnum("signature", "text", "date", "checkbox", "signblock")).
		WithProperty("page", openapi3.NewIntegerSchema().WithMin(1)).
		WithProperty("position", position).
		WithProperty("size", size).
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("required", openapi3.NewBoolSchema()).
		WithProperty("captureOptions", captureOptions)
	fieldSchema.Required = []string{"id", "type", "page", "position", "size"}

	fields := &openapi3.Schema{
		Type:  &openapi3.Types{openapi3.TypeArray},
		Items: fieldSchema.NewRef(),
	}

	root := openapi3.NewObjectSchema().
		WithProperty("version", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("fields", fields)
	root.Required = []string{"version", "fields"}
	return root
}
