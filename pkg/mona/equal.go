package mona

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"reflect"
	"time"
)

// maxHashDepth bounds the walk over non-comparable values so that cyclic
// structures terminate.
const maxHashDepth = 32

var seed = maphash.MakeSeed()

// Equal reports structural equality. Values implementing Equaler[T] decide
// for themselves; comparable values use ==; everything else falls back to
// reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	if eq, ok := any(a).(Equaler[T]); ok {
		return eq.Equal(b)
	}

	ai, bi := any(a), any(b)
	if ai == nil || bi == nil {
		return ai == nil && bi == nil
	}
	if reflect.ValueOf(ai).Comparable() && reflect.ValueOf(bi).Comparable() {
		return ai == bi
	}
	return reflect.DeepEqual(ai, bi)
}

// Hash returns a hash of v consistent with Equal: Equal(a, b) implies
// Hash(a) == Hash(b). Types implementing Equaler should implement Hasher too;
// an Equaler without Hasher hashes to a constant per type, except time.Time,
// which hashes its instant.
func Hash[T any](v T) uint64 {
	if h, ok := any(v).(Hasher); ok {
		return h.Hash()
	}

	var h maphash.Hash
	h.SetSeed(seed)

	if _, ok := any(v).(Equaler[T]); ok {
		writeEqualer(&h, v)
		return h.Sum64()
	}

	i := any(v)
	if i == nil {
		h.WriteByte(0)
		return h.Sum64()
	}

	rv := reflect.ValueOf(i)
	if rv.Comparable() {
		maphash.WriteComparable(&h, i)
		return h.Sum64()
	}
	writeDeep(&h, rv, 0)
	return h.Sum64()
}

// writeEqualer hashes a value whose equality is decided by its Equal method,
// so raw fields (a time's location or monotonic reading) must stay out.
func writeEqualer[T any](h *maphash.Hash, v T) {
	if t, ok := any(v).(time.Time); ok {
		writeUint(h, uint64(t.Unix()))
		writeUint(h, uint64(t.Nanosecond()))
		return
	}
	h.WriteString(reflect.TypeFor[T]().String())
}

// Combine mixes a discriminant tag with a payload hash.
func Combine(tag byte, payload uint64) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(tag)
	writeUint(&h, payload)
	return h.Sum64()
}

// writeDeep hashes rv the way reflect.DeepEqual compares it: pointers by
// pointee, maps independent of iteration order.
func writeDeep(h *maphash.Hash, rv reflect.Value, depth int) {
	if depth > maxHashDepth {
		return
	}
	if !rv.IsValid() {
		h.WriteByte(0)
		return
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			h.WriteByte(1)
		} else {
			h.WriteByte(2)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(h, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(h, rv.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(h, rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		writeFloat(h, real(c))
		writeFloat(h, imag(c))
	case reflect.String:
		h.WriteString(rv.String())
	case reflect.Slice, reflect.Array:
		writeUint(h, uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			writeDeep(h, rv.Index(i), depth+1)
		}
	case reflect.Map:
		writeUint(h, uint64(rv.Len()))
		var sum uint64
		iter := rv.MapRange()
		for iter.Next() {
			var eh maphash.Hash
			eh.SetSeed(seed)
			writeDeep(&eh, iter.Key(), depth+1)
			writeDeep(&eh, iter.Value(), depth+1)
			sum += eh.Sum64()
		}
		writeUint(h, sum)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			h.WriteByte(0)
			return
		}
		if rv.Kind() == reflect.Interface {
			h.WriteString(rv.Elem().Type().String())
		}
		writeDeep(h, rv.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			writeDeep(h, rv.Field(i), depth+1)
		}
	case reflect.Func:
		if rv.IsNil() {
			h.WriteByte(0)
		} else {
			h.WriteByte(1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		writeUint(h, uint64(rv.Pointer()))
	}
}

func writeUint(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func writeFloat(h *maphash.Hash, f float64) {
	if f == 0 {
		f = 0 // +0 and -0 compare equal
	}
	writeUint(h, math.Float64bits(f))
}
