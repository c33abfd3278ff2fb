package option

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// IsZero reports None, so that `json:",omitzero"` leaves None fields out.
func (o Option[T]) IsZero() bool {
	return !o.some
}

// MarshalJSON encodes None as null and Some(v) as v. Nested Options share
// the one null: Some(None) encodes as null and decodes back as None, so
// Option[Option[T]] keeps Some(Some(v)) and None across a round trip but
// not Some(None). The YAML codec behaves the same.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as From(v).
func (o *Option[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("option: decode json: %w", err)
	}
	*o = From(v)
	return nil
}

// MarshalYAML encodes None as null and Some(v) as v.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.some {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a null node as None and anything else as From(v).
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("option: decode yaml: %w", err)
	}
	*o = From(v)
	return nil
}

// DecodeRaw implements mona.RawDecoder: nil becomes None, anything else is
// converted to T by decode and wrapped with From.
func (o *Option[T]) DecodeRaw(raw any, decode func(raw, target any) error) error {
	if raw == nil {
		*o = None[T]()
		return nil
	}

	var v T
	if err := decode(raw, &v); err != nil {
		return fmt.Errorf("option: decode %T: %w", raw, err)
	}
	*o = From(v)
	return nil
}
