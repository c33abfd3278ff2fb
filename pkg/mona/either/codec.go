package either

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/mona/pkg/mona"
)

const (
	leftKey  = "left"
	rightKey = "right"
)

var errShape = errors.New(`either: expected an object with exactly one of "left" or "right"`)

// MarshalJSON encodes a Left as {"left": v} and a Right as {"right": v}.
// Bottom cannot be encoded and yields mona.ErrTrapState.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	switch e.side {
	case left:
		return json.Marshal(map[string]L{leftKey: e.left})
	case right:
		return json.Marshal(map[string]R{rightKey: e.right})
	default:
		return nil, &mona.Error{Kind: mona.ErrTrapState, Op: "either.MarshalJSON"}
	}
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (e *Either[L, R]) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("either: decode json: %w", err)
	}
	if len(m) != 1 {
		return errShape
	}

	if raw, ok := m[leftKey]; ok {
		var l L
		if err := json.Unmarshal(raw, &l); err != nil {
			return fmt.Errorf("either: decode left: %w", err)
		}
		return e.setLeft(l, "either.UnmarshalJSON")
	}
	if raw, ok := m[rightKey]; ok {
		var r R
		if err := json.Unmarshal(raw, &r); err != nil {
			return fmt.Errorf("either: decode right: %w", err)
		}
		return e.setRight(r, "either.UnmarshalJSON")
	}
	return errShape
}

// MarshalYAML encodes a Left as {left: v} and a Right as {right: v}.
func (e Either[L, R]) MarshalYAML() (any, error) {
	switch e.side {
	case left:
		return map[string]L{leftKey: e.left}, nil
	case right:
		return map[string]R{rightKey: e.right}, nil
	default:
		return nil, &mona.Error{Kind: mona.ErrTrapState, Op: "either.MarshalYAML"}
	}
}

// UnmarshalYAML accepts the shape produced by MarshalYAML.
func (e *Either[L, R]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return errShape
	}

	key, value := node.Content[0], node.Content[1]
	switch key.Value {
	case leftKey:
		var l L
		if err := value.Decode(&l); err != nil {
			return fmt.Errorf("either: decode left: %w", err)
		}
		return e.setLeft(l, "either.UnmarshalYAML")
	case rightKey:
		var r R
		if err := value.Decode(&r); err != nil {
			return fmt.Errorf("either: decode right: %w", err)
		}
		return e.setRight(r, "either.UnmarshalYAML")
	default:
		return errShape
	}
}

// DecodeRaw implements mona.RawDecoder for a map with a single "left" or
// "right" key.
func (e *Either[L, R]) DecodeRaw(raw any, decode func(raw, target any) error) error {
	m, ok := raw.(map[string]any)
	if !ok || len(m) != 1 {
		return errShape
	}

	if v, ok := m[leftKey]; ok {
		var l L
		if err := decode(v, &l); err != nil {
			return fmt.Errorf("either: decode left: %w", err)
		}
		return e.setLeft(l, "either.DecodeRaw")
	}
	if v, ok := m[rightKey]; ok {
		var r R
		if err := decode(v, &r); err != nil {
			return fmt.Errorf("either: decode right: %w", err)
		}
		return e.setRight(r, "either.DecodeRaw")
	}
	return errShape
}

func (e *Either[L, R]) setLeft(l L, op string) error {
	if mona.IsAbsent(l) {
		return &mona.Error{Kind: mona.ErrValueAbsent, Op: op}
	}
	*e = Either[L, R]{left: l, side: left}
	return nil
}

func (e *Either[L, R]) setRight(r R, op string) error {
	if mona.IsAbsent(r) {
		return &mona.Error{Kind: mona.ErrValueAbsent, Op: op}
	}
	*e = Either[L, R]{right: r, side: right}
	return nil
}
