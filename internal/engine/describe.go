package engine

import (
	"fmt"
	"strings"

	"github.com/mandarini/astra-arcana/internal/data"
)

// FailureDescription is the sentence given to every spell that fails its roll.
const FailureDescription = "The spell fizzles and fails to manifest any effects."

// Describe composes the one-sentence summary of a cast.
func Describe(result data.SpellResult, fx Effects) string {
	if !result.Success {
		return FailureDescription
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "A %s spell that %s, lasting for a %s period",
		fx.SuccessDescription, effectClause(fx.PrimaryEffects), fx.DurationDescription)

	if fx.SpecialEffect != nil {
		fmt.Fprintf(&sb, ". Additionally, it triggers \"%s\" - %s", fx.SpecialEffect.Name, fx.SpecialEffect.Description)
	} else {
		sb.WriteString(".")
	}
	return sb.String()
}

func effectClause(effects []data.ElementEffect) string {
	clauses := make([]string, len(effects))
	for i, fx := range effects {
		clauses[i] = fmt.Sprintf("creates a %s %s effect", fx.Strength, fx.Effect)
	}

	switch len(clauses) {
	case 0:
		return "produces minimal magical effects"
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	default:
		last := len(clauses) - 1
		return strings.Join(clauses[:last], ", ") + ", and " + clauses[last]
	}
}
