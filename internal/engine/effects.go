package engine

import (
	"math"
	"sort"

	"github.com/mandarini/astra-arcana/internal/data"
)

const (
	strongShare   = 0.4
	moderateShare = 0.2
	subtleShare   = 0.05
	moderateWords = 3
)

// Effects is the narrative layer derived from a SpellResult.
type Effects struct {
	PrimaryEffects      []data.ElementEffect
	SpecialEffect       *data.SpecialEffect
	EffectStrength      float64
	DurationDescription string
	SuccessDescription  string
}

// DeriveEffects classifies each element's share of the spell, evaluates the special
// effect rules and buckets duration and success. A failed spell short-circuits.
func (e *Engine) DeriveEffects(result data.SpellResult) Effects {
	if !result.Success {
		return Effects{
			PrimaryEffects:     []data.ElementEffect{},
			EffectStrength:     1,
			SuccessDescription: "failed",
		}
	}

	total := math.Max(result.ElementalBalance.Total(), 1)
	effects := []data.ElementEffect{}
	for _, el := range data.RealElements {
		v := result.ElementalBalance[el]
		if v <= 0 {
			continue
		}
		share := v / total
		words := e.tables.EffectWords(el)
		if len(words) == 0 {
			continue
		}

		var effect data.ElementEffect
		switch {
		case share >= strongShare:
			effect = data.ElementEffect{Effect: words[0], Strength: data.Strong}
		case share >= moderateShare:
			top := words[:min(moderateWords, len(words))]
			effect = data.ElementEffect{Effect: top[e.pick(len(top))], Strength: data.Moderate}
		case share >= subtleShare:
			effect = data.ElementEffect{Effect: words[e.pick(len(words))], Strength: data.Subtle}
		default:
			continue
		}
		effect.Element = el
		effect.Proportion = share
		effects = append(effects, effect)
	}

	sort.SliceStable(effects, func(i, j int) bool {
		return effects[i].Proportion > effects[j].Proportion
	})

	return Effects{
		PrimaryEffects:      effects,
		SpecialEffect:       e.specials.Evaluate(result),
		EffectStrength:      result.Power,
		DurationDescription: DescribeDuration(result.Duration),
		SuccessDescription:  DescribeSuccess(result.SuccessRate),
	}
}

// DescribeDuration buckets a spell duration.
func DescribeDuration(duration float64) string {
	switch {
	case duration > 8:
		return "permanent"
	case duration > 5:
		return "long-lasting"
	case duration > 3:
		return "temporary"
	default:
		return "brief"
	}
}

// DescribeSuccess buckets a success rate.
func DescribeSuccess(rate float64) string {
	switch {
	case rate > 80:
		return "perfectly cast"
	case rate > 60:
		return "successfully cast"
	default:
		return "barely successful"
	}
}
