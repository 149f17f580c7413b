package data

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// ElementDef describes one element of the hexagon.
type ElementDef struct {
	ID        Element   `yaml:"id"`
	BaseValue float64   `yaml:"base_value"`
	Opposite  Element   `yaml:"opposite"`
	Neighbors []Element `yaml:"neighbors"`
}

// KindTraits is the (power, duration, complexity) triple of an incantation kind.
type KindTraits struct {
	Power      float64 `yaml:"power"`
	Duration   float64 `yaml:"duration"`
	Complexity float64 `yaml:"complexity"`
}

// Tables holds every static lookup the engine reads. A loaded Tables value is
// treated as read-only and may be shared between goroutines.
type Tables struct {
	NeutralBaseValue float64               `yaml:"neutral_base_value"`
	Elements         []ElementDef          `yaml:"elements"`
	Ages             map[Age]float64       `yaml:"ages"`
	MoonPhases       map[MoonPhase]float64 `yaml:"moon_phases"`
	Languages        map[Language]float64  `yaml:"languages"`
	Kinds            map[Kind]KindTraits   `yaml:"kinds"`
	Effects          map[Element][]string  `yaml:"effects"`

	byID map[Element]ElementDef
}

var defaultTables = mustParseTables(tablesYAML)

// DefaultTables returns the embedded tables. The value is shared; do not modify it.
func DefaultTables() *Tables {
	return defaultTables
}

// LoadTables reads a table override file from disk.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables %s: %w", path, err)
	}
	t, err := ParseTables(raw)
	if err != nil {
		return nil, fmt.Errorf("tables %s: %w", path, err)
	}
	return t, nil
}

// ParseTables decodes and validates a YAML table document.
func ParseTables(raw []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}
	t.index()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func mustParseTables(raw []byte) *Tables {
	t, err := ParseTables(raw)
	if err != nil {
		panic(fmt.Sprintf("embedded tables.yaml: %v", err))
	}
	return t
}

func (t *Tables) index() {
	t.byID = make(map[Element]ElementDef, len(t.Elements))
	for _, def := range t.Elements {
		t.byID[def.ID] = def
	}
}

// Validate checks that every real element is present, has exactly one opposite and
// two neighbors, and that both relations are mutual.
func (t *Tables) Validate() error {
	if t.byID == nil {
		t.index()
	}
	for _, e := range RealElements {
		def, ok := t.byID[e]
		if !ok {
			return fmt.Errorf("element %s is missing from the table", e)
		}
		if !def.Opposite.IsReal() || def.Opposite == e {
			return fmt.Errorf("element %s has invalid opposite %q", e, def.Opposite)
		}
		if t.byID[def.Opposite].Opposite != e {
			return fmt.Errorf("opposite of %s is %s, but %s is opposed to %s", e, def.Opposite, def.Opposite, t.byID[def.Opposite].Opposite)
		}
		if len(def.Neighbors) != 2 {
			return fmt.Errorf("element %s must have exactly two neighbors, got %d", e, len(def.Neighbors))
		}
		for _, n := range def.Neighbors {
			if !n.IsReal() || n == e {
				return fmt.Errorf("element %s has invalid neighbor %q", e, n)
			}
			if !slices.Contains(t.byID[n].Neighbors, e) {
				return fmt.Errorf("element %s lists %s as neighbor but not the other way round", e, n)
			}
		}
		if len(t.Effects[e]) < 3 {
			return fmt.Errorf("element %s needs at least three effect words", e)
		}
	}
	if _, ok := t.Kinds[KindSpell]; !ok {
		return fmt.Errorf("kind %s is required as the fallback triple", KindSpell)
	}
	return nil
}

// Element looks up the definition of a real element.
func (t *Tables) Element(e Element) (ElementDef, bool) {
	def, ok := t.byID[e]
	return def, ok
}

// BaseValue returns the element's base value, or the neutral base value for
// anything not in the table.
func (t *Tables) BaseValue(e Element) float64 {
	if def, ok := t.byID[e]; ok {
		return def.BaseValue
	}
	return t.NeutralBaseValue
}

// AgeModifier defaults to 1 for absent or unknown ages.
func (t *Tables) AgeModifier(a Age) float64 {
	if m, ok := t.Ages[a]; ok && a != "" {
		return m
	}
	return 1
}

// MoonModifier defaults to 1 for absent or unknown phases.
func (t *Tables) MoonModifier(p MoonPhase) float64 {
	if m, ok := t.MoonPhases[p]; ok && p != "" {
		return m
	}
	return 1
}

// LanguageModifier defaults to 1 for languages missing from the table.
func (t *Tables) LanguageModifier(l Language) float64 {
	if m, ok := t.Languages[l]; ok {
		return m
	}
	return 1
}

// KindTraits falls back to the spell triple for unknown kinds.
func (t *Tables) KindTraits(k Kind) KindTraits {
	if traits, ok := t.Kinds[k]; ok {
		return traits
	}
	return t.Kinds[KindSpell]
}

// EffectWords returns the ordered effect words of an element; the first is canonical.
func (t *Tables) EffectWords(e Element) []string {
	return t.Effects[e]
}
