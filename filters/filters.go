// Package filters selects listed items with CEL expressions.
//
// An expression sees the current item as the variable "item":
//
//	item.status == "done" && item.dataset.perf > 0.5
//	item.name.startsWith("mnist")
//	has(item.computePlanID)
package filters

import (
	"encoding/json"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// ItemVariable is the name under which an item is exposed to expressions.
const ItemVariable = "item"

// Filter is a compiled filter expression.
type Filter struct {
	expression string
	program    cel.Program
}

// NewEnv creates the CEL environment filters are compiled in.
func NewEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Math(),
		cel.CrossTypeNumericComparisons(true),
		cel.Variable(ItemVariable, cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return env, nil
}

// Compile parses and checks expression.
func Compile(expression string) (*Filter, error) {
	env, err := NewEnv()
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter '%s': %w", expression, issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("invalid filter '%s': %w", expression, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter against one item.
func (f *Filter) Match(item map[string]interface{}) (bool, error) {
	out, _, err := f.program.Eval(map[string]interface{}{
		ItemVariable: normalize(item),
	})
	if err != nil {
		return false, fmt.Errorf("filter '%s' failed: %w", f.expression, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter '%s' must evaluate to a bool, got %s", f.expression, out.Type().TypeName())
	}
	return matched, nil
}

// Apply returns the items matched by the filter, in input order.
func (f *Filter) Apply(items []map[string]interface{}) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		matched, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if matched {
			result = append(result, item)
		}
	}
	return result, nil
}

// normalize converts decoded JSON numbers to int64 or float64 so they
// compare naturally in expressions.
func normalize(v interface{}) interface{} {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if f, err := value.Float64(); err == nil {
			return f
		}
		return value.String()
	case map[string]interface{}:
		if value == nil {
			return map[string]interface{}{}
		}
		out := make(map[string]interface{}, len(value))
		for k, elem := range value {
			out[k] = normalize(elem)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, elem := range value {
			out[i] = normalize(elem)
		}
		return out
	default:
		return v
	}
}
