package engine

import "github.com/mandarini/astra-arcana/internal/data"

// resolveElement maps an optional affinity to a real element, or neutral when the
// affinity is absent or unknown. The boolean reports whether it was valid.
func resolveElement(affinity data.Element) (data.Element, bool) {
	if affinity == "" {
		return data.Neutral, false
	}
	return data.ParseElement(string(affinity))
}

// ProcessIngredient resolves an ingredient's element and scales its base value by age.
func (e *Engine) ProcessIngredient(ing data.Ingredient) data.ProcessedIngredient {
	elementID, _ := resolveElement(ing.Affinity)
	return data.ProcessedIngredient{
		ElementID:      elementID,
		ProcessedValue: e.tables.BaseValue(elementID) * e.tables.AgeModifier(ing.Age),
		Name:           ing.Name,
	}
}

// ProcessIncantation resolves an incantation's element, scales its base value by
// language and moon phase, and attaches the kind's power/duration/complexity triple.
func (e *Engine) ProcessIncantation(inc data.Incantation) data.ProcessedIncantation {
	elementID, attuned := resolveElement(inc.Affinity)
	traits := e.tables.KindTraits(inc.Kind)
	value := e.tables.BaseValue(elementID) *
		e.tables.LanguageModifier(inc.Language) *
		e.tables.MoonModifier(inc.MoonPhase)

	return data.ProcessedIncantation{
		ElementID:      elementID,
		Attuned:        attuned,
		SpellTypeID:    inc.Kind,
		LanguageID:     inc.Language,
		MoonPhase:      inc.MoonPhase,
		ProcessedValue: value,
		Power:          traits.Power,
		Duration:       traits.Duration,
		Complexity:     traits.Complexity,
		Name:           inc.Name,
	}
}
