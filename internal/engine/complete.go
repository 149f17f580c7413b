package engine

import "github.com/mandarini/astra-arcana/internal/data"

// CalculateComplete runs Calculate and layers effects and the description on top.
func (e *Engine) CalculateComplete(ingredients []data.Ingredient, incantations []data.Incantation) data.CompleteSpellResult {
	result := e.Calculate(ingredients, incantations)
	fx := e.DeriveEffects(result)

	complete := data.CompleteSpellResult{
		SpellResult:         result,
		Effects:             fx.PrimaryEffects,
		SpecialEffect:       fx.SpecialEffect,
		EffectStrength:      fx.EffectStrength,
		DurationDescription: fx.DurationDescription,
		SuccessDescription:  fx.SuccessDescription,
		SpellDescription:    Describe(result, fx),
	}
	if complete.SpecialEffect != nil {
		e.log.Debug("special effect triggered", "name", complete.SpecialEffect.Name)
	}
	return complete
}

// Visualize returns the same aggregation as Calculate with the per-pair
// interactions exposed. It never rolls.
func (e *Engine) Visualize(ingredients []data.Ingredient, incantations []data.Incantation) data.VisualizationData {
	agg := e.aggregate(ingredients, incantations)
	return data.VisualizationData{
		ElementalBalance:    agg.balance.Real(),
		Interactions:        agg.interactions,
		InteractionModifier: agg.modifier,
		SuccessRate:         agg.successRate,
		Power:               agg.power,
		Duration:            agg.duration,
		Complexity:          agg.complexity,
		DominantElement:     agg.dominant,
	}
}
