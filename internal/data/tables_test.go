package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesContent(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.Validate())

	for _, e := range RealElements {
		assert.Equal(t, 5.0, tables.BaseValue(e), "base value of %s", e)
	}
	assert.Equal(t, 3.0, tables.BaseValue(Neutral))
	assert.Equal(t, 3.0, tables.BaseValue("plasma"))

	fire, ok := tables.Element(Fire)
	require.True(t, ok)
	assert.Equal(t, Water, fire.Opposite)
	assert.ElementsMatch(t, []Element{Air, Earth}, fire.Neighbors)

	aether, ok := tables.Element(Aether)
	require.True(t, ok)
	assert.Equal(t, Void, aether.Opposite)
	assert.ElementsMatch(t, []Element{Water, Void}, aether.Neighbors)

	assert.Equal(t, "transformation", tables.EffectWords(Fire)[0])
	assert.Len(t, tables.EffectWords(Void), 5)
}

func TestModifierFallbacks(t *testing.T) {
	tables := DefaultTables()

	t.Run("Ages", func(t *testing.T) {
		assert.Equal(t, 1.0, tables.AgeModifier(Fresh))
		assert.Equal(t, 1.5, tables.AgeModifier(Old))
		assert.Equal(t, 2.0, tables.AgeModifier(Ancient))
		assert.Equal(t, 1.0, tables.AgeModifier(""))
		assert.Equal(t, 1.0, tables.AgeModifier("prehistoric"))
	})

	t.Run("Moon phases", func(t *testing.T) {
		assert.Equal(t, 1.0, tables.MoonModifier(NewMoon))
		assert.Equal(t, 1.2, tables.MoonModifier(Waxing))
		assert.Equal(t, 1.5, tables.MoonModifier(FullMoon))
		assert.Equal(t, 0.8, tables.MoonModifier(Waning))
		assert.Equal(t, 1.0, tables.MoonModifier(""))
		assert.Equal(t, 1.0, tables.MoonModifier("blood"))
	})

	t.Run("Languages", func(t *testing.T) {
		assert.Equal(t, 1.3, tables.LanguageModifier("Latin"))
		assert.Equal(t, 1.4, tables.LanguageModifier("Sanskrit"))
		assert.Equal(t, 1.2, tables.LanguageModifier("Old English"))
		assert.Equal(t, 0.9, tables.LanguageModifier("Other"))
		assert.Equal(t, 1.0, tables.LanguageModifier("Klingon"))
	})

	t.Run("Kinds", func(t *testing.T) {
		assert.Equal(t, KindTraits{Power: 2, Duration: 1, Complexity: 1}, tables.KindTraits(KindSpell))
		assert.Equal(t, KindTraits{Power: 1, Duration: 2, Complexity: 2}, tables.KindTraits(KindRitual))
		assert.Equal(t, KindTraits{Power: 0.5, Duration: 1.5, Complexity: 1.5}, tables.KindTraits(KindSupport))
		assert.Equal(t, KindTraits{Power: 3, Duration: 1, Complexity: 3}, tables.KindTraits(KindSacrifice))
		assert.Equal(t, KindTraits{Power: 1, Duration: 1, Complexity: 1}, tables.KindTraits(KindOther))
		assert.Equal(t, tables.KindTraits(KindSpell), tables.KindTraits("chant"))
	})
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	t.Run("Asymmetric opposite", func(t *testing.T) {
		raw := []byte(`
neutral_base_value: 3
elements:
  - {id: fire, base_value: 5, opposite: water, neighbors: [air, earth]}
  - {id: water, base_value: 5, opposite: earth, neighbors: [earth, aether]}
  - {id: earth, base_value: 5, opposite: air, neighbors: [fire, water]}
  - {id: air, base_value: 5, opposite: earth, neighbors: [fire, void]}
  - {id: aether, base_value: 5, opposite: void, neighbors: [water, void]}
  - {id: void, base_value: 5, opposite: aether, neighbors: [air, aether]}
kinds:
  spell: {power: 2, duration: 1, complexity: 1}
`)
		_, err := ParseTables(raw)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "opposite")
	})

	t.Run("Missing element", func(t *testing.T) {
		_, err := ParseTables([]byte("neutral_base_value: 3\nelements: []\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})
}

func TestLoadTablesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, tablesYAML, 0644))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTables().Languages, tables.Languages)

	_, err = LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseElement(t *testing.T) {
	e, ok := ParseElement("Fire")
	assert.True(t, ok)
	assert.Equal(t, Fire, e)

	e, ok = ParseElement("neutral")
	assert.False(t, ok)
	assert.Equal(t, Neutral, e)

	_, ok = ParseElement("")
	assert.False(t, ok)
}

func TestNewBalanceHasAllKeys(t *testing.T) {
	b := NewBalance()
	assert.Len(t, b, 7)
	for _, e := range append(RealElements, Neutral) {
		v, ok := b[e]
		assert.True(t, ok, "missing %s", e)
		assert.Zero(t, v)
	}

	b[Fire] = 4
	b[Neutral] = 9
	assert.Equal(t, 4.0, b.Total())
	assert.Len(t, b.Real(), 6)
}
