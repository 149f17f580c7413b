package data

// Ingredient is a raw ingredient as selected by the caster.
// Affinity and Age are optional and left empty when absent.
type Ingredient struct {
	Name     string  `json:"name" yaml:"name"`
	Affinity Element `json:"affinity,omitempty" yaml:"affinity,omitempty"`
	Age      Age     `json:"age,omitempty" yaml:"age,omitempty"`
}

// Incantation is a raw incantation as selected by the caster.
type Incantation struct {
	Name      string    `json:"name" yaml:"name"`
	Language  Language  `json:"language" yaml:"language"`
	Affinity  Element   `json:"affinity,omitempty" yaml:"affinity,omitempty"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	MoonPhase MoonPhase `json:"moonphase,omitempty" yaml:"moonphase,omitempty"`
}

// ProcessedIngredient carries the resolved element and scalar value of an ingredient.
type ProcessedIngredient struct {
	ElementID      Element `json:"elementId"`
	ProcessedValue float64 `json:"processedValue"`
	Name           string  `json:"name"`
}

// ProcessedIncantation carries the resolved element, value and kind triple of an incantation.
// Attuned is false when the incantation had no valid affinity; such incantations
// never reach the elemental balance.
type ProcessedIncantation struct {
	ElementID      Element   `json:"elementId"`
	Attuned        bool      `json:"attuned"`
	SpellTypeID    Kind      `json:"spellTypeId"`
	LanguageID     Language  `json:"languageId"`
	MoonPhase      MoonPhase `json:"moonPhase,omitempty"`
	ProcessedValue float64   `json:"processedValue"`
	Power          float64   `json:"power"`
	Duration       float64   `json:"duration"`
	Complexity     float64   `json:"complexity"`
	Name           string    `json:"name"`
}

// Balance accumulates processed values per element.
type Balance map[Element]float64

// NewBalance returns a balance with every real element and neutral set to zero.
func NewBalance() Balance {
	b := make(Balance, len(RealElements)+1)
	for _, e := range RealElements {
		b[e] = 0
	}
	b[Neutral] = 0
	return b
}

// Total sums the real elements, leaving neutral out.
func (b Balance) Total() float64 {
	total := 0.0
	for _, e := range RealElements {
		total += b[e]
	}
	return total
}

// Real returns a copy restricted to the six real elements.
func (b Balance) Real() Balance {
	out := make(Balance, len(RealElements))
	for _, e := range RealElements {
		out[e] = b[e]
	}
	return out
}

// SpellResult is the numeric outcome of a calculation.
type SpellResult struct {
	Success             bool     `json:"success"`
	SuccessRate         float64  `json:"successRate"`
	Power               float64  `json:"power"`
	Duration            float64  `json:"duration"`
	DominantElement     Element  `json:"dominantElement"`
	ElementalBalance    Balance  `json:"elementalBalance"`
	InteractionModifier float64  `json:"interactionModifier"`
	Ingredients         []string `json:"ingredients"`
	Incantations        []string `json:"incantations"`
}

// Strength buckets an element's share of the spell.
type Strength string

const (
	Strong   Strength = "strong"
	Moderate Strength = "moderate"
	Subtle   Strength = "subtle"
)

// ElementEffect is a flavor effect contributed by one element.
type ElementEffect struct {
	Element    Element  `json:"element"`
	Effect     string   `json:"effect"`
	Strength   Strength `json:"strength"`
	Proportion float64  `json:"proportion"`
}

// SpecialEffect is a named bonus outcome. Elements is set by the harmony fallback
// and Element by the overload fallback.
type SpecialEffect struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Elements    string  `json:"elements,omitempty" yaml:"elements,omitempty"`
	Element     Element `json:"element,omitempty" yaml:"element,omitempty"`
}

// CompleteSpellResult is a SpellResult plus its narrative fields.
type CompleteSpellResult struct {
	SpellResult
	Effects             []ElementEffect `json:"effects"`
	SpecialEffect       *SpecialEffect  `json:"specialEffect"`
	EffectStrength      float64         `json:"effectStrength"`
	DurationDescription string          `json:"durationDescription"`
	SuccessDescription  string          `json:"successDescription"`
	SpellDescription    string          `json:"spellDescription"`
}

// RelationshipType names how two elements relate.
type RelationshipType string

const (
	Opposite  RelationshipType = "opposite"
	Neighbor  RelationshipType = "neighbor"
	Unrelated RelationshipType = "neutral"
)

// Interaction is one pairwise element interaction, for rendering clients.
type Interaction struct {
	Element1         Element          `json:"element1"`
	Element2         Element          `json:"element2"`
	RelationshipType RelationshipType `json:"relationshipType"`
	Modifier         float64          `json:"modifier"`
	Strength         float64          `json:"strength"`
}

// VisualizationData is the UI-oriented view of a calculation.
type VisualizationData struct {
	ElementalBalance    Balance       `json:"elementalBalance"`
	Interactions        []Interaction `json:"interactions"`
	InteractionModifier float64       `json:"interactionModifier"`
	SuccessRate         float64       `json:"successRate"`
	Power               float64       `json:"power"`
	Duration            float64       `json:"duration"`
	Complexity          float64       `json:"complexity"`
	DominantElement     Element       `json:"dominantElement"`
}

// CastRequest is the input of a cast: the ingredient and incantation selections.
type CastRequest struct {
	Ingredients  []Ingredient  `json:"ingredients" yaml:"ingredients"`
	Incantations []Incantation `json:"incantations" yaml:"incantations"`
}
