// Package inspect renders containers as structured zap fields:
//
//	logger.Debug("lookup", inspect.Option("user", found), inspect.Try("save", saved))
//
// Each field is an object with a "state" key, the payload under "value"
// (or "left"/"right"), and the payload type under "type".
package inspect

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/mona/pkg/mona"
)

// Option logs an option.Option (or any mona.Optional).
func Option(key string, o mona.Optional) zap.Field {
	return zap.Object(key, optional{o})
}

// Either logs an either.Either. Bottom is logged as state "bottom".
func Either(key string, s mona.Sided) zap.Field {
	return zap.Object(key, sided{s: s, labels: eitherLabels})
}

// Try logs a try.Try with states "not_attempted", "err" and "ok".
func Try(key string, s mona.Sided) zap.Field {
	return zap.Object(key, sided{s: s, labels: tryLabels})
}

// Any picks the container rendering when v is a container and falls back
// to zap.Any otherwise.
func Any(key string, v any) zap.Field {
	switch c := v.(type) {
	case mona.Optional:
		return Option(key, c)
	case mona.Sided:
		if _, ok := c.(attempted); ok {
			return Try(key, c)
		}
		return Either(key, c)
	default:
		return zap.Any(key, v)
	}
}

type attempted interface {
	IsAttempted() bool
}

type optional struct {
	o mona.Optional
}

func (m optional) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", m.o.ElemType().String())
	v, ok := m.o.Any()
	if !ok {
		enc.AddString("state", "none")
		return nil
	}
	enc.AddString("state", "some")
	return addValue(enc, "value", v)
}

type labels struct {
	empty, left, right string
}

var (
	eitherLabels = labels{empty: "bottom", left: "left", right: "right"}
	tryLabels    = labels{empty: "not_attempted", left: "err", right: "ok"}
)

type sided struct {
	s      mona.Sided
	labels labels
}

func (m sided) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if v, ok := m.s.LeftAny(); ok {
		enc.AddString("state", m.labels.left)
		enc.AddString("type", m.s.LeftType().String())
		return addValue(enc, "value", v)
	}
	if v, ok := m.s.RightAny(); ok {
		enc.AddString("state", m.labels.right)
		enc.AddString("type", m.s.RightType().String())
		return addValue(enc, "value", v)
	}
	enc.AddString("state", m.labels.empty)
	return nil
}

func addValue(enc zapcore.ObjectEncoder, key string, v any) error {
	switch x := v.(type) {
	case error:
		enc.AddString(key, x.Error())
		return nil
	case zapcore.ObjectMarshaler:
		return enc.AddObject(key, x)
	default:
		return enc.AddReflected(key, v)
	}
}
