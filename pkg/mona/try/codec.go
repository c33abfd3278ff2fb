package try

import (
	"gopkg.in/yaml.v3"
)

// The codecs delegate to the inner Option of Either: NotAttempted is null,
// Err(e) is {"left": e} and Ok(o) is {"right": o}.

// IsZero reports NotAttempted.
func (t Try[E, O]) IsZero() bool {
	return !t.inner.IsSome()
}

func (t Try[E, O]) MarshalJSON() ([]byte, error) {
	return t.inner.MarshalJSON()
}

func (t *Try[E, O]) UnmarshalJSON(b []byte) error {
	return t.inner.UnmarshalJSON(b)
}

func (t Try[E, O]) MarshalYAML() (any, error) {
	return t.inner.MarshalYAML()
}

func (t *Try[E, O]) UnmarshalYAML(node *yaml.Node) error {
	return t.inner.UnmarshalYAML(node)
}

// DecodeRaw implements mona.RawDecoder.
func (t *Try[E, O]) DecodeRaw(raw any, decode func(raw, target any) error) error {
	return t.inner.DecodeRaw(raw, decode)
}
