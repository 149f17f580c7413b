package rules

import (
	"github.com/mandarini/astra-arcana/internal/data"
)

// ContextFromResult converts a SpellResult into the variables a predicate sees.
// Every element key is present so predicates never hit a missing map entry.
func ContextFromResult(result data.SpellResult) map[string]any {
	balance := make(map[string]float64, len(data.RealElements)+1)
	for _, e := range data.RealElements {
		balance[string(e)] = result.ElementalBalance[e]
	}
	balance[string(data.Neutral)] = result.ElementalBalance[data.Neutral]

	return map[string]any{
		"balance":      balance,
		"ingredients":  nonNil(result.Ingredients),
		"incantations": nonNil(result.Incantations),
	}
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
