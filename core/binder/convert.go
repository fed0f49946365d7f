package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConvertFunc turns URL text into a value of one concrete type.
type ConvertFunc func(text string) (any, error)

// Converters is a registry of text conversions keyed by the target type.
// Lookups for unregistered types fail with ErrTypeConversion.
// A registry must not be modified once a descriptor using it serves requests.
type Converters struct {
	funcs map[reflect.Type]ConvertFunc
}

// NewConverters returns an empty registry.
func NewConverters() *Converters {
	return &Converters{funcs: make(map[reflect.Type]ConvertFunc)}
}

// DefaultConverters returns a fresh registry with conversions for strings,
// booleans, every integer and float width, time.Time, time.Duration and uuid.UUID.
func DefaultConverters() *Converters {
	c := NewConverters()

	Register(c, func(s string) (string, error) { return sanitizeStringValue(s), nil })
	Register(c, parseBool)

	registerInt[int](c, strconv.IntSize)
	registerInt[int8](c, 8)
	registerInt[int16](c, 16)
	registerInt[int32](c, 32)
	registerInt[int64](c, 64)

	registerUint[uint](c, strconv.IntSize)
	registerUint[uint8](c, 8)
	registerUint[uint16](c, 16)
	registerUint[uint32](c, 32)
	registerUint[uint64](c, 64)

	Register(c, func(s string) (float32, error) {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid float value %q", s)
		}
		return float32(f), nil
	})
	Register(c, func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float value %q", s)
		}
		return f, nil
	})

	Register(c, parseTime)
	Register(c, func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q", s)
		}
		return d, nil
	})
	Register(c, func(s string) (uuid.UUID, error) {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid uuid value %q", s)
		}
		return id, nil
	})

	return c
}

// Register adds or replaces the conversion for type V.
func Register[V any](c *Converters, fn func(text string) (V, error)) {
	c.funcs[reflect.TypeFor[V]()] = func(text string) (any, error) {
		return fn(text)
	}
}

// Has reports whether the registry can convert text into t.
func (c *Converters) Has(t reflect.Type) bool {
	_, ok := c.funcs[t]
	return ok
}

// Convert turns text into a value of type t.
// Empty text yields the zero value of any registered type.
func (c *Converters) Convert(t reflect.Type, text string) (any, error) {
	fn, ok := c.funcs[t]
	if !ok {
		return nil, fmt.Errorf("%w: no converter registered for %s", ErrTypeConversion, t)
	}
	if text == "" {
		return reflect.Zero(t).Interface(), nil
	}
	v, err := fn(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTypeConversion, err)
	}
	return v, nil
}

// Convert is the typed form of Converters.Convert.
func Convert[V any](c *Converters, text string) (V, error) {
	var zero V
	raw, err := c.Convert(reflect.TypeFor[V](), text)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(V)
	if !ok {
		return zero, fmt.Errorf("%w: converter for %s returned %T", ErrTypeConversion, reflect.TypeFor[V](), raw)
	}
	return v, nil
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func registerInt[V signed](c *Converters, bits int) {
	Register(c, func(s string) (V, error) {
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid int value %q", s)
		}
		return V(n), nil
	})
}

func registerUint[V unsigned](c *Converters, bits int) {
	Register(c, func(s string) (V, error) {
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid uint value %q", s)
		}
		return V(n), nil
	})
}

// parseBool accepts strconv.ParseBool forms plus on/off and yes/no.
func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err == nil {
		return b, nil
	}
	switch strings.ToLower(s) {
	case "on", "yes", "1":
		return true, nil
	case "off", "no", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", s)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time value %q", s)
	}
	return t, nil
}
