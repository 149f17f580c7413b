package data

import "strings"

// Element is one of the six hexagonal elements, or the neutral bucket.
type Element string

const (
	Fire    Element = "fire"
	Water   Element = "water"
	Earth   Element = "earth"
	Air     Element = "air"
	Aether  Element = "aether"
	Void    Element = "void"
	Neutral Element = "neutral"
)

// RealElements is the fixed iteration order used for pairs, dominance ties and effects.
var RealElements = []Element{Fire, Water, Earth, Air, Aether, Void}

var elementMap = map[string]Element{
	"fire":   Fire,
	"water":  Water,
	"earth":  Earth,
	"air":    Air,
	"aether": Aether,
	"void":   Void,
}

// ParseElement converts a string into a real Element. Neutral is never returned as valid.
func ParseElement(s string) (Element, bool) {
	if val, ok := elementMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		return val, true
	}
	return Neutral, false
}

// IsReal reports whether e is one of the six hexagonal elements.
func (e Element) IsReal() bool {
	_, ok := elementMap[string(e)]
	return ok
}

// Age of an ingredient.
type Age string

const (
	Fresh   Age = "fresh"
	Old     Age = "old"
	Ancient Age = "ancient"
)

// MoonPhase under which an incantation is spoken.
type MoonPhase string

const (
	NewMoon  MoonPhase = "new"
	Waxing   MoonPhase = "waxing"
	FullMoon MoonPhase = "full"
	Waning   MoonPhase = "waning"
)

// Kind classifies an incantation.
type Kind string

const (
	KindSpell     Kind = "spell"
	KindRitual    Kind = "ritual"
	KindSupport   Kind = "support"
	KindSacrifice Kind = "sacrifice"
	KindOther     Kind = "other"
)

// Language is an open set; unknown languages fall back to a neutral multiplier.
type Language string
