package printers

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldKind selects how a Field post-processes the value found at its path.
type FieldKind int

const (
	// FieldPlain returns the value found at the path unchanged
	FieldPlain FieldKind = iota
	// FieldPermissions shows an empty permission list as owner only
	FieldPermissions
	// FieldDataSampleKeys summarizes a key list as a count unless expanded
	FieldDataSampleKeys
)

const (
	noneValue      = "None"
	ownerOnlyValue = "owner only"
)

// Field defines a single named value of an item, located by a dotted path.
type Field struct {
	Name string
	Path string
	Kind FieldKind
}

// NewField creates a plain field.
func NewField(name, path string) Field {
	return Field{Name: name, Path: path, Kind: FieldPlain}
}

// NewPermissionField creates a field rendering an empty list as "owner only".
func NewPermissionField(name, path string) Field {
	return Field{Name: name, Path: path, Kind: FieldPermissions}
}

// NewDataSampleKeysField creates a field rendering key lists as a count
// unless expanded.
func NewDataSampleKeysField(name, path string) Field {
	return Field{Name: name, Path: path, Kind: FieldDataSampleKeys}
}

// Header returns the column or line header of the field.
func (f Field) Header() string {
	return strings.ToUpper(f.Name)
}

// Value returns the value of the field for item. A path that cannot be
// resolved yields nil.
func (f Field) Value(item Item, expand bool) interface{} {
	value, _ := Lookup(item, f.Path)

	switch f.Kind {
	case FieldPermissions:
		if list, ok := asList(value); ok && len(list) == 0 {
			return ownerOnlyValue
		}
	case FieldDataSampleKeys:
		if list, ok := asList(value); ok && !expand && len(list) > 0 {
			if len(list) == 1 {
				return "1 data sample key"
			}
			return fmt.Sprintf("%d data sample keys", len(list))
		}
	}

	return value
}

// Lookup resolves a dotted path such as "a.b.c" against nested mappings.
// found is false when a segment is missing or a parent is not a mapping.
func Lookup(item Item, path string) (value interface{}, found bool) {
	var current interface{} = item
	for _, segment := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, m != nil
	case map[string]string:
		out := make(map[string]interface{}, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func asList(v interface{}) ([]interface{}, bool) {
	switch l := v.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return l, true
	case []string:
		out := make([]interface{}, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		// raw bytes are a scalar for display purposes
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
