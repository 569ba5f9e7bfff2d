// Package platform provides the typed bridge between Go and the Capacitor
// plugin runtime. It lets Go code call named plugin methods (clipboard,
// haptics, preferences, etc.) and manage event listener registrations
// (network changes, app state, notifications, etc.).
package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TypeName returns the display name of T used in serialization errors.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Encode serializes a typed value for the host.
func Encode[T any](value T) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes a host payload into T.
//
// Struct fields whose JSON tag lacks omitempty or omitzero and whose type is
// not a pointer are required: a payload that omits one is rejected instead of
// yielding a partially populated value. An empty or null payload decodes to
// the zero value only when T has nothing required.
func Decode[T any](data []byte) (T, error) {
	var value T
	t := reflect.TypeFor[T]()

	if isNull(data) {
		if !nullable(t) {
			return value, fmt.Errorf("expected %s, got null", t)
		}
		return value, nil
	}

	if err := checkRequired(t, data); err != nil {
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}

func isNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// nullable reports whether a null payload is an acceptable encoding of t.
func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	case reflect.Struct:
		for _, f := range fieldRules(t) {
			if f.required {
				return false
			}
		}
		return true
	}
	return false
}

type fieldRule struct {
	name     string
	required bool
	// nested is set when the field's value holds structs whose fields are
	// checked: a struct, or a slice, array or map of them.
	nested reflect.Type
}

var (
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	rulesCache      sync.Map // reflect.Type -> []fieldRule
)

func fieldRules(t reflect.Type) []fieldRule {
	if cached, ok := rulesCache.Load(t); ok {
		return cached.([]fieldRule)
	}

	var rules []fieldRule
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		rule := fieldRule{
			name:     name,
			required: f.Type.Kind() != reflect.Pointer && !hasOption(opts, "omitempty") && !hasOption(opts, "omitzero"),
		}
		if holdsStructs(f.Type) {
			rule.nested = f.Type
		}
		rules = append(rules, rule)
	}

	rulesCache.Store(t, rules)
	return rules
}

// holdsStructs reports whether values of t contain structs that
// checkRequired can inspect.
func holdsStructs(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if implementsUnmarshaler(t) {
		return false
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array, reflect.Map:
		return holdsStructs(t.Elem())
	}
	return false
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

func implementsUnmarshaler(t reflect.Type) bool {
	return t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType)
}

// checkRequired verifies that every required field of every struct in data
// is present, descending into struct fields and into the items of slices,
// arrays and maps. Anything else is left to encoding/json.
func checkRequired(t reflect.Type, data []byte) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if !holdsStructs(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		for i, raw := range items {
			if isNull(raw) {
				continue
			}
			if err := checkRequired(t.Elem(), raw); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	case reflect.Map:
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		for key, raw := range entries {
			if isNull(raw) {
				continue
			}
			if err := checkRequired(t.Elem(), raw); err != nil {
				return fmt.Errorf("entry %q: %w", key, err)
			}
		}
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for _, rule := range fieldRules(t) {
		raw, present := fields[rule.name]
		if !present {
			if rule.required {
				return fmt.Errorf("missing field `%s`", rule.name)
			}
			continue
		}
		if rule.nested == nil || isNull(raw) {
			continue
		}
		if err := checkRequired(rule.nested, raw); err != nil {
			return fmt.Errorf("%s: %w", rule.name, err)
		}
	}
	return nil
}
