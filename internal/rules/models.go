package rules

import "github.com/mandarini/astra-arcana/internal/data"

// Rule is a named special effect gated by a CEL predicate.
type Rule struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	When        string `yaml:"when"`
}

// HarmonyRule fires when MinElements real elements each reach Threshold.
type HarmonyRule struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Threshold   float64 `yaml:"threshold"`
	MinElements int     `yaml:"min_elements"`
}

// OverloadRule fires when exactly one real element exceeds Threshold.
// Description may reference the element as {element}.
type OverloadRule struct {
	Threshold    float64                 `yaml:"threshold"`
	FallbackName string                  `yaml:"fallback_name"`
	Description  string                  `yaml:"description"`
	Names        map[data.Element]string `yaml:"names"`
}

// RuleFile is the on-disk layout of a special effect table.
type RuleFile struct {
	Rules    []Rule       `yaml:"rules"`
	Harmony  HarmonyRule  `yaml:"harmony"`
	Overload OverloadRule `yaml:"overload"`
}
