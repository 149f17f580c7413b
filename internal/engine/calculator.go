package engine

import (
	"math"

	"github.com/mandarini/astra-arcana/internal/data"
)

// aggregate is the shared calculation pass behind Calculate and Visualize.
type aggregate struct {
	balance      data.Balance
	interactions []data.Interaction
	modifier     float64
	power        float64
	duration     float64
	complexity   float64
	successRate  float64
	dominant     data.Element
}

func (e *Engine) aggregate(ingredients []data.Ingredient, incantations []data.Incantation) aggregate {
	balance := data.NewBalance()

	for _, ing := range ingredients {
		p := e.ProcessIngredient(ing)
		balance[p.ElementID] += p.ProcessedValue
	}

	var totalPower, totalDuration, totalComplexity float64
	for _, inc := range incantations {
		p := e.ProcessIncantation(inc)
		if p.Attuned {
			balance[p.ElementID] += p.ProcessedValue
		}
		totalPower += p.Power * p.ProcessedValue
		totalDuration += p.Duration * p.ProcessedValue
		totalComplexity += p.Complexity
	}

	interactions, modifier := e.interactions(balance)

	count := float64(len(ingredients))
	totalComplexity *= 1 + 0.1*count

	return aggregate{
		balance:      balance,
		interactions: interactions,
		modifier:     modifier,
		power:        math.Max(0, totalPower*(1+modifier)),
		duration:     math.Max(0.5, totalDuration*(1+0.5*modifier)*(1+0.2*count)),
		complexity:   totalComplexity,
		successRate:  clamp(100-5*totalComplexity+20*modifier, 5, 100),
		dominant:     dominantElement(balance),
	}
}

// interactions walks the 15 unordered pairs of real elements and weighs every pair
// where both sides are present by the mean of their balances.
func (e *Engine) interactions(balance data.Balance) ([]data.Interaction, float64) {
	out := []data.Interaction{}
	var modifier float64
	for i, a := range data.RealElements {
		for _, b := range data.RealElements[i+1:] {
			if balance[a] <= 0 || balance[b] <= 0 {
				continue
			}
			coefficient := e.Relationship(a, b)
			strength := (balance[a] + balance[b]) / 2
			modifier += coefficient * strength
			out = append(out, data.Interaction{
				Element1:         a,
				Element2:         b,
				RelationshipType: e.RelationshipType(a, b),
				Modifier:         coefficient,
				Strength:         strength,
			})
		}
	}
	return out, modifier
}

// dominantElement returns the real element with the strictly greatest positive
// balance. Ties keep the first element in RealElements order.
func dominantElement(balance data.Balance) data.Element {
	dominant := data.Neutral
	best := 0.0
	for _, el := range data.RealElements {
		if balance[el] > best {
			best = balance[el]
			dominant = el
		}
	}
	return dominant
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}
	return out
}

// Calculate scores a selection of ingredients and incantations and draws once
// against the success rate.
func (e *Engine) Calculate(ingredients []data.Ingredient, incantations []data.Incantation) data.SpellResult {
	agg := e.aggregate(ingredients, incantations)
	success := e.roll()*100 <= agg.successRate

	e.log.Debug("spell calculated",
		"ingredients", len(ingredients),
		"incantations", len(incantations),
		"interaction_modifier", agg.modifier,
		"success_rate", agg.successRate,
		"success", success,
	)

	return data.SpellResult{
		Success:             success,
		SuccessRate:         agg.successRate,
		Power:               agg.power,
		Duration:            agg.duration,
		DominantElement:     agg.dominant,
		ElementalBalance:    agg.balance,
		InteractionModifier: agg.modifier,
		Ingredients:         names(ingredients, func(i data.Ingredient) string { return i.Name }),
		Incantations:        names(incantations, func(i data.Incantation) string { return i.Name }),
	}
}
