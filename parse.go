package jod

import (
	"bytes"
	"context"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes raw JSON bytes into the untyped value shape the core
// consumes: map[string]any for objects, []any for arrays, json.Number for
// numbers (no float64 precision loss), string/bool/nil for the rest.
func DecodeJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("jod: decode json: %w", err)
	}
	return v, nil
}

// ParseJSON decodes raw JSON bytes and validates the result against s in one
// step. Decode failures surface as a PARSE_ERROR violation at the root so
// callers see a single Result either way.
func ParseJSON[T any](ctx context.Context, s Schema[T], data []byte) Result[T] {
	v, err := DecodeJSON(data)
	if err != nil {
		return Failure[T](NewError(CodeParseError, err.Error(), nil))
	}
	return s.ValidateNullable(ctx, v)
}

// DecodeYAML decodes raw YAML bytes into the same untyped value shape as
// DecodeJSON. Mapping keys are normalized to strings; YAML integers arrive
// as int and floats as float64, both accepted by the numeric schemas.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jod: decode yaml: %w", err)
	}
	return normalizeYAML(v), nil
}

// ParseYAML decodes raw YAML bytes and validates the result against s.
func ParseYAML[T any](ctx context.Context, s Schema[T], data []byte) Result[T] {
	v, err := DecodeYAML(data)
	if err != nil {
		return Failure[T](NewError(CodeParseError, err.Error(), nil))
	}
	return s.ValidateNullable(ctx, v)
}

// normalizeYAML rewrites yaml.v3 output so nested mappings always appear as
// map[string]any regardless of key typing in the source document.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return v
	}
}
