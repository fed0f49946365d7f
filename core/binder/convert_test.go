package binder_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchbind/core/binder"
)

func TestDefaultConverters(t *testing.T) {
	t.Parallel()

	conv := binder.DefaultConverters()

	tests := []struct {
		name string
		typ  reflect.Type
		in   string
		want any
	}{
		{name: "string", typ: reflect.TypeFor[string](), in: "Dune", want: "Dune"},
		{name: "string strips control chars", typ: reflect.TypeFor[string](), in: "Du\x00ne\r\n", want: "Dune"},
		{name: "int", typ: reflect.TypeFor[int](), in: "-42", want: -42},
		{name: "int8", typ: reflect.TypeFor[int8](), in: "127", want: int8(127)},
		{name: "int64", typ: reflect.TypeFor[int64](), in: "9000000000", want: int64(9000000000)},
		{name: "uint16", typ: reflect.TypeFor[uint16](), in: "65535", want: uint16(65535)},
		{name: "float32", typ: reflect.TypeFor[float32](), in: "4.5", want: float32(4.5)},
		{name: "float64", typ: reflect.TypeFor[float64](), in: "4.25", want: 4.25},
		{name: "bool true", typ: reflect.TypeFor[bool](), in: "true", want: true},
		{name: "bool yes", typ: reflect.TypeFor[bool](), in: "yes", want: true},
		{name: "bool off", typ: reflect.TypeFor[bool](), in: "off", want: false},
		{name: "duration", typ: reflect.TypeFor[time.Duration](), in: "1m30s", want: 90 * time.Second},
		{name: "date", typ: reflect.TypeFor[time.Time](), in: "1965-08-01", want: time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", typ: reflect.TypeFor[time.Time](), in: "1965-08-01T10:00:00Z", want: time.Date(1965, time.August, 1, 10, 0, 0, 0, time.UTC)},
		{name: "uuid", typ: reflect.TypeFor[uuid.UUID](), in: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", want: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
		{name: "empty int is zero", typ: reflect.TypeFor[int](), in: "", want: 0},
		{name: "empty bool is false", typ: reflect.TypeFor[bool](), in: "", want: false},
		{name: "empty uuid is nil", typ: reflect.TypeFor[uuid.UUID](), in: "", want: uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := conv.Convert(tt.typ, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultConverters_Failures(t *testing.T) {
	t.Parallel()

	conv := binder.DefaultConverters()

	tests := []struct {
		name string
		typ  reflect.Type
		in   string
	}{
		{name: "int from text", typ: reflect.TypeFor[int](), in: "abc"},
		{name: "int8 overflow", typ: reflect.TypeFor[int8](), in: "128"},
		{name: "negative uint", typ: reflect.TypeFor[uint](), in: "-1"},
		{name: "float", typ: reflect.TypeFor[float64](), in: "four"},
		{name: "bool", typ: reflect.TypeFor[bool](), in: "maybe"},
		{name: "time", typ: reflect.TypeFor[time.Time](), in: "yesterday"},
		{name: "duration", typ: reflect.TypeFor[time.Duration](), in: "forever"},
		{name: "uuid", typ: reflect.TypeFor[uuid.UUID](), in: "not-a-uuid"},
		{name: "unregistered type", typ: reflect.TypeFor[complex128](), in: "1+2i"},
		{name: "unregistered type with empty text", typ: reflect.TypeFor[complex128](), in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := conv.Convert(tt.typ, tt.in)
			assert.ErrorIs(t, err, binder.ErrTypeConversion)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	type status string

	conv := binder.NewConverters()
	assert.False(t, conv.Has(reflect.TypeFor[status]()))

	binder.Register(conv, func(s string) (status, error) {
		return status("st:" + s), nil
	})
	assert.True(t, conv.Has(reflect.TypeFor[status]()))
	assert.False(t, conv.Has(reflect.TypeFor[string]()))

	got, err := binder.Convert[status](conv, "open")
	require.NoError(t, err)
	assert.Equal(t, status("st:open"), got)

	_, err = binder.Convert[int](conv, "1")
	assert.ErrorIs(t, err, binder.ErrTypeConversion)
}
