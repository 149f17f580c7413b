package rules

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"

	"github.com/mandarini/astra-arcana/internal/data"
)

//go:embed specials.yaml
var specialsYAML []byte

type compiledRule struct {
	Rule
	program cel.Program
}

// RuleSet evaluates special effects in table order. It is safe for concurrent use
// once built.
type RuleSet struct {
	rules    []compiledRule
	harmony  HarmonyRule
	overload OverloadRule
	log      *slog.Logger
}

// DefaultRuleSet compiles the embedded special effect table.
func DefaultRuleSet() (*RuleSet, error) {
	return ParseRuleSet(specialsYAML)
}

// LoadRuleSet compiles a special effect table read from disk.
func LoadRuleSet(path string) (*RuleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read special effects %s: %w", path, err)
	}
	rs, err := ParseRuleSet(raw)
	if err != nil {
		return nil, fmt.Errorf("special effects %s: %w", path, err)
	}
	return rs, nil
}

// ParseRuleSet decodes a rule table and compiles every predicate up front so a bad
// rule is reported at load time instead of mid-cast.
func ParseRuleSet(raw []byte) (*RuleSet, error) {
	var f RuleFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode special effects: %w", err)
	}
	reg, err := NewRegistry()
	if err != nil {
		return nil, err
	}

	rs := &RuleSet{
		rules:    make([]compiledRule, 0, len(f.Rules)),
		harmony:  f.Harmony,
		overload: f.Overload,
		log:      slog.Default(),
	}
	for _, r := range f.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("special effect rule with predicate %q has no name", r.When)
		}
		prg, err := reg.Compile(r.When)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		rs.rules = append(rs.rules, compiledRule{Rule: r, program: prg})
	}
	return rs, nil
}

// WithLogger sets the logger used to report predicate evaluation failures.
func (rs *RuleSet) WithLogger(l *slog.Logger) *RuleSet {
	if l != nil {
		rs.log = l
	}
	return rs
}

// Rules returns the named rules in evaluation order.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.Rule
	}
	return out
}

// Evaluate returns the special effect a result triggers, or nil. Named rules come
// first, then the harmony and overload fallbacks.
func (rs *RuleSet) Evaluate(result data.SpellResult) *data.SpecialEffect {
	if effect := rs.matchNamed(result); effect != nil {
		return effect
	}
	if effect := rs.matchHarmony(result); effect != nil {
		return effect
	}
	return rs.matchOverload(result)
}

// Match reports whether the named rule's predicate holds for result.
func (rs *RuleSet) Match(name string, result data.SpellResult) (bool, error) {
	for _, r := range rs.rules {
		if r.Name == name {
			return r.eval(ContextFromResult(result))
		}
	}
	return false, fmt.Errorf("unknown special effect rule %q", name)
}

func (rs *RuleSet) matchNamed(result data.SpellResult) *data.SpecialEffect {
	ctx := ContextFromResult(result)
	for _, r := range rs.rules {
		ok, err := r.eval(ctx)
		if err != nil {
			rs.log.Warn("special effect predicate failed", "rule", r.Name, "error", err)
			continue
		}
		if ok {
			return &data.SpecialEffect{Name: r.Name, Description: r.Description}
		}
	}
	return nil
}

func (r compiledRule) eval(ctx map[string]any) (bool, error) {
	out, _, err := r.program.Eval(ctx)
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("predicate returned %T, want bool", out.Value())
	}
	return b, nil
}

func (rs *RuleSet) matchHarmony(result data.SpellResult) *data.SpecialEffect {
	if rs.harmony.Name == "" {
		return nil
	}
	var significant []string
	for _, e := range data.RealElements {
		if result.ElementalBalance[e] >= rs.harmony.Threshold {
			significant = append(significant, string(e))
		}
	}
	if len(significant) < rs.harmony.MinElements {
		return nil
	}
	return &data.SpecialEffect{
		Name:        rs.harmony.Name,
		Description: rs.harmony.Description,
		Elements:    strings.Join(significant, ", "),
	}
}

func (rs *RuleSet) matchOverload(result data.SpellResult) *data.SpecialEffect {
	if rs.overload.Description == "" {
		return nil
	}
	var powerful []data.Element
	for _, e := range data.RealElements {
		if result.ElementalBalance[e] > rs.overload.Threshold {
			powerful = append(powerful, e)
		}
	}
	if len(powerful) != 1 {
		return nil
	}
	e := powerful[0]
	name, ok := rs.overload.Names[e]
	if !ok {
		name = rs.overload.FallbackName
	}
	return &data.SpecialEffect{
		Name:        name,
		Description: strings.ReplaceAll(rs.overload.Description, "{element}", string(e)),
		Element:     e,
	}
}
