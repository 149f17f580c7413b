package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandarini/astra-arcana/internal/data"
)

// spell builds a successful result from a sparse balance.
func spell(balance map[data.Element]float64, ingredients, incantations []string) data.SpellResult {
	b := data.NewBalance()
	for e, v := range balance {
		b[e] = v
	}
	return data.SpellResult{
		Success:          true,
		SuccessRate:      90,
		ElementalBalance: b,
		Ingredients:      ingredients,
		Incantations:     incantations,
	}
}

func TestCELRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("Balance threshold", func(t *testing.T) {
		ctx := ContextFromResult(spell(map[data.Element]float64{data.Fire: 6}, nil, nil))
		out, err := registry.Eval(`balance["fire"] > 5.0`, ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Name substring", func(t *testing.T) {
		ctx := ContextFromResult(spell(nil, []string{"Cold brew coffee grounds"}, nil))
		out, err := registry.Eval(`ingredients.exists(i, i.contains("coffee"))`, ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Undeclared variable", func(t *testing.T) {
		_, err := registry.Compile(`potency > 1.0`)
		assert.Error(t, err)
	})

	t.Run("Non boolean predicate", func(t *testing.T) {
		_, err := registry.Compile(`balance["fire"] + 1.0`)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bool")
	})
}

func TestDefaultRuleSetOrder(t *testing.T) {
	rs, err := DefaultRuleSet()
	require.NoError(t, err)

	names := make([]string, 0, 12)
	for _, r := range rs.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"Digital Detox",
		"Viral Charm",
		"Mercury Retrograde Shield",
		"Eco-Amplification",
		"Aesthetic Manifestation",
		"Self-Care Sanctuary",
		"Algorithm Banishment",
		"Plant Parent Blessing",
		"Caffeine Amplification",
		"Imposter Syndrome Exorcism",
		"Sustainable Luxury",
		"Retrowave Nostalgia",
	}, names)
}

func TestNamedRules(t *testing.T) {
	rs, err := DefaultRuleSet()
	require.NoError(t, err)

	cases := []struct {
		rule         string
		balance      map[data.Element]float64
		ingredients  []string
		incantations []string
	}{
		{"Digital Detox", map[data.Element]float64{data.Void: 5.5, data.Water: 3.5}, []string{"Cloud-harvested rainwater"}, nil},
		{"Viral Charm", map[data.Element]float64{data.Air: 4.5, data.Fire: 3.5}, nil, []string{"Subscribe To My Channel"}},
		{"Mercury Retrograde Shield", map[data.Element]float64{data.Aether: 7, data.Earth: 5}, []string{"Solar-charged crystal"}, nil},
		{"Eco-Amplification", map[data.Element]float64{data.Earth: 8, data.Water: 4}, []string{"Locally foraged organic sage"}, nil},
		{"Aesthetic Manifestation", map[data.Element]float64{data.Fire: 5, data.Aether: 5}, nil, []string{"Manifestación Ahora"}},
		{"Self-Care Sanctuary", map[data.Element]float64{data.Water: 6, data.Void: 4}, []string{"CBD oil"}, nil},
		{"Algorithm Banishment", map[data.Element]float64{data.Void: 7, data.Air: 4}, nil, []string{"Banish Algorithm"}},
		{"Plant Parent Blessing", map[data.Element]float64{data.Earth: 6, data.Water: 6}, []string{"Organic mandrake root"}, nil},
		{"Caffeine Amplification", map[data.Element]float64{data.Fire: 5, data.Earth: 4}, []string{"Cold brew coffee grounds"}, nil},
		{"Imposter Syndrome Exorcism", map[data.Element]float64{data.Aether: 5, data.Air: 5, data.Fire: 3}, nil, []string{"Unmute Energy"}},
		{"Sustainable Luxury", map[data.Element]float64{data.Earth: 5, data.Aether: 4}, []string{"Ethically sourced dragon scales"}, nil},
		{"Retrowave Nostalgia", map[data.Element]float64{data.Void: 5, data.Fire: 4}, []string{"vintage cassette tape"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			result := spell(tc.balance, tc.ingredients, tc.incantations)

			ok, err := rs.Match(tc.rule, result)
			require.NoError(t, err)
			assert.True(t, ok)

			// Names alone never trigger a rule.
			ok, err = rs.Match(tc.rule, spell(nil, tc.ingredients, tc.incantations))
			require.NoError(t, err)
			assert.False(t, ok)

			// Thresholds alone never trigger a rule.
			ok, err = rs.Match(tc.rule, spell(tc.balance, nil, nil))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}

	_, err = rs.Match("Nope", spell(nil, nil, nil))
	assert.Error(t, err)
}

func TestThresholdsAreStrict(t *testing.T) {
	rs, err := DefaultRuleSet()
	require.NoError(t, err)

	ok, err := rs.Match("Caffeine Amplification", spell(map[data.Element]float64{data.Fire: 4, data.Earth: 4}, []string{"coffee"}, nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAlgorithmBanishmentPrecedence(t *testing.T) {
	rs, err := DefaultRuleSet()
	require.NoError(t, err)

	// void and air alone would also satisfy the overload fallback and, with earth,
	// the harmony fallback.
	result := spell(
		map[data.Element]float64{data.Void: 12, data.Air: 4, data.Earth: 3},
		[]string{"Smart home dust"},
		[]string{"Banish Algorithm"},
	)
	effect := rs.Evaluate(result)
	require.NotNil(t, effect)
	assert.Equal(t, "Algorithm Banishment", effect.Name)
	assert.Empty(t, effect.Elements)
	assert.Empty(t, effect.Element)
}

func TestFirstMatchingRuleWins(t *testing.T) {
	rs, err := DefaultRuleSet()
	require.NoError(t, err)

	// Satisfies both Caffeine Amplification (9) and Retrowave Nostalgia (12).
	result := spell(
		map[data.Element]float64{data.Fire: 5, data.Earth: 4, data.Void: 5},
		[]string{"coffee", "vintage vinyl"},
		nil,
	)
	effect := rs.Evaluate(result)
	require.NotNil(t, effect)
	assert.Equal(t, "Caffeine Amplification", effect.Name)
}

func TestFallbacks(t *testing.T) {
	rs, err := DefaultRuleSet()
	require.NoError(t, err)

	t.Run("Elemental Harmony", func(t *testing.T) {
		effect := rs.Evaluate(spell(map[data.Element]float64{data.Fire: 3, data.Air: 3.5, data.Void: 20}, nil, nil))
		require.NotNil(t, effect)
		assert.Equal(t, "Elemental Harmony", effect.Name)
		assert.Equal(t, "fire, air, void", effect.Elements)
	})

	t.Run("Overload", func(t *testing.T) {
		effect := rs.Evaluate(spell(map[data.Element]float64{data.Water: 10.5, data.Earth: 2}, nil, nil))
		require.NotNil(t, effect)
		assert.Equal(t, "Tsunami Resonance", effect.Name)
		assert.Equal(t, data.Water, effect.Element)
		assert.Equal(t, "The overwhelming water energy creates unstable but extremely powerful effects. The spell's primary effect is doubled, but duration is halved.", effect.Description)
	})

	t.Run("Overload names", func(t *testing.T) {
		want := map[data.Element]string{
			data.Fire:   "Inferno Overdrive",
			data.Water:  "Tsunami Resonance",
			data.Earth:  "Tectonic Awakening",
			data.Air:    "Cyclonic Ascension",
			data.Aether: "Astral Breakthrough",
			data.Void:   "Void Collapse",
		}
		for e, name := range want {
			effect := rs.Evaluate(spell(map[data.Element]float64{e: 11}, nil, nil))
			require.NotNil(t, effect, "element %s", e)
			assert.Equal(t, name, effect.Name)
		}
	})

	t.Run("Two overloaded elements", func(t *testing.T) {
		effect := rs.Evaluate(spell(map[data.Element]float64{data.Fire: 11, data.Water: 11}, nil, nil))
		assert.Nil(t, effect)
	})

	t.Run("Nothing", func(t *testing.T) {
		assert.Nil(t, rs.Evaluate(spell(map[data.Element]float64{data.Fire: 10}, nil, nil)))
		assert.Nil(t, rs.Evaluate(spell(nil, nil, nil)))
	})

	t.Run("Neutral is ignored", func(t *testing.T) {
		assert.Nil(t, rs.Evaluate(spell(map[data.Element]float64{data.Neutral: 50}, nil, nil)))
	})
}

func TestParseRuleSetErrors(t *testing.T) {
	_, err := ParseRuleSet([]byte("rules:\n  - name: Broken\n    when: 'balance[\"fire\"] >'\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")

	_, err = ParseRuleSet([]byte("rules:\n  - when: 'true'\n"))
	assert.Error(t, err)

	_, err = ParseRuleSet([]byte("rules: {"))
	assert.Error(t, err)
}
