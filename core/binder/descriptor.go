package binder

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync/atomic"

	"golang.org/x/text/cases"
)

// field is one entry of a Descriptor. A nil setJSON marks a read-only field.
type field[T any] struct {
	name  string
	typ   reflect.Type
	slice bool

	setJSON  func(dst *T, raw []byte) error
	setRoute func(dst *T, value any, conv *Converters) error
	setText  func(dst *T, values []string, conv *Converters) error
}

func (f *field[T]) settable() bool {
	return f.setJSON != nil
}

// Descriptor is the explicit field table of a partially bindable type T.
// Build it once at package level with Field, SliceField and ReadOnly;
// it is sealed by its first use and safe for concurrent binds afterwards.
type Descriptor[T any] struct {
	fields   []*field[T]
	index    map[string]*field[T]
	foldCase bool
	conv     *Converters
	sealed   atomic.Bool
}

// DescriptorOption configures a Descriptor.
type DescriptorOption func(*descriptorConfig)

type descriptorConfig struct {
	foldCase bool
	conv     *Converters
}

// CaseInsensitive matches source keys against field names using Unicode case folding.
func CaseInsensitive() DescriptorOption {
	return func(c *descriptorConfig) {
		c.foldCase = true
	}
}

// WithConverters replaces the default conversion registry used for route and query values.
func WithConverters(conv *Converters) DescriptorOption {
	return func(c *descriptorConfig) {
		if conv != nil {
			c.conv = conv
		}
	}
}

// NewDescriptor creates an empty field table for T.
func NewDescriptor[T any](opts ...DescriptorOption) *Descriptor[T] {
	cfg := descriptorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.conv == nil {
		cfg.conv = DefaultConverters()
	}
	return &Descriptor[T]{
		index:    make(map[string]*field[T]),
		foldCase: cfg.foldCase,
		conv:     cfg.conv,
	}
}

// Field declares a settable scalar field named name with value type V.
// It panics if the name is already declared or the descriptor is in use.
func Field[T, V any](d *Descriptor[T], name string, set func(dst *T, v V)) {
	if set == nil {
		panic(fmt.Sprintf("binder: nil setter for field %q", name))
	}
	d.add(&field[T]{
		name: name,
		typ:  reflect.TypeFor[V](),
		setJSON: func(dst *T, raw []byte) error {
			var v V
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			set(dst, sanitized(v))
			return nil
		},
		setRoute: func(dst *T, value any, conv *Converters) error {
			switch x := value.(type) {
			case V:
				set(dst, sanitized(x))
				return nil
			case string:
				return setConverted(dst, x, conv, set)
			case fmt.Stringer:
				return setConverted(dst, x.String(), conv, set)
			default:
				return fmt.Errorf("%w: unsupported route value of type %T", ErrTypeConversion, value)
			}
		},
		setText: func(dst *T, values []string, conv *Converters) error {
			var text string
			if len(values) > 0 {
				text = values[0]
			}
			return setConverted(dst, text, conv, set)
		},
	})
}

// SliceField declares a settable list field with element type E.
// Query values for it are taken from every occurrence of the key,
// and comma separated values are split.
func SliceField[T, E any](d *Descriptor[T], name string, set func(dst *T, v []E)) {
	if set == nil {
		panic(fmt.Sprintf("binder: nil setter for field %q", name))
	}
	convertAll := func(dst *T, values []string, conv *Converters) error {
		items := splitValues(values)
		out := make([]E, 0, len(items))
		for _, item := range items {
			v, err := Convert[E](conv, item)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		set(dst, out)
		return nil
	}
	d.add(&field[T]{
		name:  name,
		typ:   reflect.TypeFor[[]E](),
		slice: true,
		setJSON: func(dst *T, raw []byte) error {
			var v []E
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			set(dst, sanitized(v))
			return nil
		},
		setRoute: func(dst *T, value any, conv *Converters) error {
			switch x := value.(type) {
			case []E:
				set(dst, sanitized(slices.Clone(x)))
				return nil
			case string:
				return convertAll(dst, []string{x}, conv)
			case []string:
				return convertAll(dst, x, conv)
			default:
				return fmt.Errorf("%w: unsupported route value of type %T", ErrTypeConversion, value)
			}
		},
		setText: convertAll,
	})
}

// ReadOnly declares a field of type V that is never bound from any source.
func ReadOnly[T, V any](d *Descriptor[T], name string) {
	d.add(&field[T]{
		name: name,
		typ:  reflect.TypeFor[V](),
	})
}

// Names returns the declared field names in declaration order.
func (d *Descriptor[T]) Names() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.name
	}
	return names
}

// FieldType returns the declared value type of name.
func (d *Descriptor[T]) FieldType(name string) (reflect.Type, bool) {
	f, ok := d.lookup(name)
	if !ok {
		return nil, false
	}
	return f.typ, true
}

// Settable reports whether name is declared and has a setter.
func (d *Descriptor[T]) Settable(name string) bool {
	f, ok := d.lookup(name)
	return ok && f.settable()
}

func (d *Descriptor[T]) add(f *field[T]) {
	if d.sealed.Load() {
		panic(fmt.Sprintf("binder: field %q declared after descriptor for %s was used", f.name, reflect.TypeFor[T]()))
	}
	if f.name == "" {
		panic("binder: empty field name")
	}
	key := d.key(f.name)
	if _, exists := d.index[key]; exists {
		panic(fmt.Sprintf("binder: duplicate field %q", f.name))
	}
	d.index[key] = f
	d.fields = append(d.fields, f)
}

func (d *Descriptor[T]) lookup(name string) (*field[T], bool) {
	f, ok := d.index[d.key(name)]
	return f, ok
}

// key normalizes name for index lookups.
// A fresh Caser per call, since casers are not safe for concurrent use.
func (d *Descriptor[T]) key(name string) string {
	if !d.foldCase {
		return name
	}
	return cases.Fold().String(name)
}

// sanitized cleans every string reachable from v the same way query text is cleaned.
// Values behind pointers are cleaned in place.
func sanitized[V any](v V) V {
	sanitizeReflectValue(reflect.ValueOf(&v).Elem())
	return v
}

func setConverted[T, V any](dst *T, text string, conv *Converters, set func(*T, V)) error {
	v, err := Convert[V](conv, text)
	if err != nil {
		return err
	}
	set(dst, v)
	return nil
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
