// Package filter compiles expr expressions used to narrow list output
// client-side, e.g. `StartYear >= 1980 and contains(Name, "Batman")`.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression evaluated against one row at a
// time.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses and type-checks an expression. The expression must
// evaluate to a boolean.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against one environment.
func (f *Filter) Match(env map[string]any) (bool, error) {
	merged := make(map[string]any, len(env)+len(helperFuncs))
	for name, fn := range helperFuncs {
		merged[name] = fn
	}
	for key, value := range env {
		merged[key] = value
	}

	out, err := expr.Run(f.program, merged)
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed: %w", err)
	}

	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean: %q", f.expression)
	}
	return result, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// helperFuncs are available in every filter environment.
var helperFuncs = map[string]any{
	"contains": func(s, substr string) bool {
		return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
	},
	"hasPrefix": func(s, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
	},
	"hasSuffix": func(s, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
	},
	"lower": strings.ToLower,
	"now":   time.Now,
}
