// Package bridge lets configuration decoders build containers. DecodeHook
// plugs into mapstructure, and therefore into viper:
//
//	var cfg Config
//	err := v.Unmarshal(&cfg, viper.DecodeHook(bridge.DecodeHook()))
//
// Any field whose pointer type implements mona.RawDecoder is built from
// the raw value instead of being decoded field by field. Missing or null
// keys leave the field at its zero value, which is None / NotAttempted.
package bridge

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/ib-77/mona/pkg/mona"
)

var rawDecoderType = reflect.TypeFor[mona.RawDecoder]()

// DecodeHook returns a hook that decodes container fields through their
// DecodeRaw method. Payloads are decoded with mapstructure using the same
// hook plus string to time.Duration conversion, with weak typing enabled as
// viper does.
func DecodeHook() mapstructure.DecodeHookFuncType {
	var hook mapstructure.DecodeHookFuncType
	hook = func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f == t || !reflect.PointerTo(t).Implements(rawDecoderType) {
			return data, nil
		}

		target := reflect.New(t)
		dec := target.Interface().(mona.RawDecoder)
		if err := dec.DecodeRaw(data, decodeWith(hook)); err != nil {
			return nil, fmt.Errorf("bridge: decode %s: %w", t, err)
		}
		return target.Elem().Interface(), nil
	}
	return hook
}

func decodeWith(hook mapstructure.DecodeHookFuncType) func(raw, target any) error {
	return func(raw, target any) error {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				hook,
				mapstructure.StringToTimeDurationHookFunc(),
			),
			WeaklyTypedInput: true,
			Result:           target,
		})
		if err != nil {
			return err
		}
		return dec.Decode(raw)
	}
}

// ElemType recovers the element type of a container type: the value type
// of an Option and the right-hand type of an Either or Try. Pointers to
// containers are dereferenced. ok is false for any other type, including
// interface types.
func ElemType(t reflect.Type) (elem reflect.Type, ok bool) {
	v, ok := zeroContainer(t)
	if !ok {
		return nil, false
	}
	switch c := v.(type) {
	case mona.Optional:
		return c.ElemType(), true
	case mona.Sided:
		return c.RightType(), true
	default:
		return nil, false
	}
}

// SideTypes returns both payload types of an Either or Try type, or of a
// pointer to one.
func SideTypes(t reflect.Type) (left, right reflect.Type, ok bool) {
	v, ok := zeroContainer(t)
	if !ok {
		return nil, nil, false
	}
	s, ok := v.(mona.Sided)
	if !ok {
		return nil, nil, false
	}
	return s.LeftType(), s.RightType(), true
}

// zeroContainer returns the zero value of t, or of the type t points to,
// boxed. Interface types have no concrete zero to ask.
func zeroContainer(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		return nil, false
	}
	return reflect.New(t).Elem().Interface(), true
}
