package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ordinaryConverters serves exact-type conversions (uuid.UUID, time.Time, ...)
// for the reflection based binders before falling back to kind switches.
var ordinaryConverters = DefaultConverters()

// eachBindableField calls fn for every exported struct field of v not skipped by tagName.
func eachBindableField(v any, tagName string, bindErr error, fn func(name string, field reflect.Value, sf reflect.StructField) error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)

		// Skip unexported fields that reflection cannot modify
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf, tagName)
		if skip {
			continue
		}

		if err := fn(name, field, sf); err != nil {
			return err
		}
	}
	return nil
}

// bindToStruct binds values to a struct using reflection.
// tagName specifies which struct tag to use (e.g., "query", "path").
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	return eachBindableField(v, tagName, bindErr, func(name string, field reflect.Value, sf reflect.StructField) error {
		fieldValues, exists := values[name]
		if !exists || len(fieldValues) == 0 {
			return nil // No value provided, leave as zero value
		}
		if err := setFieldValue(field, sf.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
		return nil
	})
}

// parseFieldTag extracts the parameter name from struct tags and determines if the field should be skipped.
// If no tag is present, it defaults to the lowercase field name.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if len(values) == 0 {
		return nil
	}

	if ordinaryConverters.Has(fieldType) {
		v, err := ordinaryConverters.Convert(fieldType, values[0])
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(v))
		return nil
	}

	// Dereference pointers, creating new instances for nil pointers
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(sanitizeStringValue(value))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType)
	}

	return nil
}

// setSliceValue sets slice field values from repeated and comma separated values.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	items := splitValues(values)
	slice := reflect.MakeSlice(fieldType, len(items), len(items))
	for i, item := range items {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{item}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}

// sanitizeStringValue removes dangerous characters that could be used in injection attacks.
// It prevents CRLF injection, null byte attacks, and filters invalid Unicode sequences.
func sanitizeStringValue(value string) string {
	value = strings.ReplaceAll(value, "\x00", "")

	// Strip carriage return and line feed to prevent HTTP header injection
	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")

	var builder strings.Builder
	builder.Grow(len(value))
	for _, r := range value {
		if r == utf8.RuneError {
			continue
		}
		if r == '\t' || r >= ' ' || unicode.IsGraphic(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
