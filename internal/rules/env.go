package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// Registry manages the CEL environment special effect predicates are compiled in.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the spell result variables.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Lists(),

		cel.Variable("balance", cel.MapType(cel.StringType, cel.DoubleType)),
		cel.Variable("ingredients", cel.ListType(cel.StringType)),
		cel.Variable("incantations", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Registry{env: env}, nil
}

// Compile checks a predicate and returns a reusable program. Predicates must be boolean.
func (r *Registry) Compile(expression string) (cel.Program, error) {
	ast, iss := r.env.Compile(expression)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("predicate %q must evaluate to bool, got %s", expression, ast.OutputType())
	}
	prg, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}
	return prg, nil
}

// Eval compiles and executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", iss.Err())
	}
	prg, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}
	out, _, err := prg.Eval(context)
	if err != nil {
		return nil, fmt.Errorf("CEL eval error: %w", err)
	}
	return out.Value(), nil
}
