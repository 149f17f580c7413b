// Package mcpserver exposes the spell engine as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mandarini/astra-arcana/internal/data"
	"github.com/mandarini/astra-arcana/internal/engine"
	"github.com/mandarini/astra-arcana/internal/parser"
	"github.com/mandarini/astra-arcana/internal/persistence"
)

// Server wraps the MCP SDK server around an engine and an optional cast log.
type Server struct {
	MCPServer *sdkmcp.Server

	engine *engine.Engine
	store  *persistence.Store
	now    func() time.Time
	log    *slog.Logger
}

// NewServer registers the spell tools. store may be nil, in which case casts are
// not recorded and recent_casts is not offered.
func NewServer(eng *engine.Engine, store *persistence.Store, version string) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(&sdkmcp.Implementation{Name: "astra-arcana", Version: version}, nil),
		engine:    eng,
		store:     store,
		now:       time.Now,
		log:       slog.Default().With("component", "mcp"),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "cast_spell",
		Description: "Cast a spell from ingredients and incantations, or from an inline formula. Returns the outcome, effects and description.",
	}, s.handleCastSpell)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "visualize_spell",
		Description: "Compute elemental balance and pairwise element interactions for a selection without casting it.",
	}, s.handleVisualizeSpell)

	if s.store != nil {
		sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
			Name:        "recent_casts",
			Description: "List the most recent recorded casts, oldest first.",
		}, s.handleRecentCasts)
	}
}

// --- Tool input/output types ---

type selectionInput struct {
	Ingredients  []data.Ingredient  `json:"ingredients,omitempty" jsonschema:"ingredients with optional affinity (fire, water, earth, air, aether, void) and age (fresh, old, ancient)"`
	Incantations []data.Incantation `json:"incantations,omitempty" jsonschema:"incantations with language, kind (spell, ritual, support, sacrifice, other), optional affinity and moonphase"`
	Formula      string             `json:"formula,omitempty" jsonschema:"inline cast formula, e.g. ingredient \"Dragon scale\" affinity: fire + incantation \"Ignis\" language: Latin; overrides the lists"`
}

type effectOutput struct {
	Element    string  `json:"element"`
	Effect     string  `json:"effect"`
	Strength   string  `json:"strength"`
	Proportion float64 `json:"proportion"`
}

type castSpellOutput struct {
	EntryID             string             `json:"entry_id,omitempty"`
	Success             bool               `json:"success"`
	SuccessRate         float64            `json:"success_rate"`
	Power               float64            `json:"power"`
	Duration            float64            `json:"duration"`
	DominantElement     string             `json:"dominant_element"`
	ElementalBalance    map[string]float64 `json:"elemental_balance"`
	Effects             []effectOutput     `json:"effects"`
	SpecialEffect       string             `json:"special_effect,omitempty"`
	DurationDescription string             `json:"duration_description,omitempty"`
	SuccessDescription  string             `json:"success_description"`
	Description         string             `json:"description"`
}

type interactionOutput struct {
	Element1     string  `json:"element1"`
	Element2     string  `json:"element2"`
	Relationship string  `json:"relationship"`
	Modifier     float64 `json:"modifier"`
	Strength     float64 `json:"strength"`
}

type visualizeSpellOutput struct {
	ElementalBalance    map[string]float64  `json:"elemental_balance"`
	Interactions        []interactionOutput `json:"interactions"`
	InteractionModifier float64             `json:"interaction_modifier"`
	SuccessRate         float64             `json:"success_rate"`
	Power               float64             `json:"power"`
	Duration            float64             `json:"duration"`
	Complexity          float64             `json:"complexity"`
	DominantElement     string              `json:"dominant_element"`
}

type recentCastsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"how many casts to return (default 10)"`
}

type castSummary struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}

type recentCastsOutput struct {
	Casts []castSummary `json:"casts"`
}

// --- Handlers ---

func (in selectionInput) request() (*data.CastRequest, error) {
	if in.Formula != "" {
		return parser.Parse(in.Formula)
	}
	return &data.CastRequest{Ingredients: in.Ingredients, Incantations: in.Incantations}, nil
}

func (s *Server) handleCastSpell(_ context.Context, _ *sdkmcp.CallToolRequest, input selectionInput) (*sdkmcp.CallToolResult, castSpellOutput, error) {
	req, err := input.request()
	if err != nil {
		return nil, castSpellOutput{}, err
	}
	if len(req.Ingredients) == 0 && len(req.Incantations) == 0 {
		return nil, castSpellOutput{}, errors.New("at least one ingredient or incantation is required")
	}

	result := s.engine.CalculateComplete(req.Ingredients, req.Incantations)
	out := castSpellOutput{
		Success:             result.Success,
		SuccessRate:         result.SuccessRate,
		Power:               result.Power,
		Duration:            result.Duration,
		DominantElement:     string(result.DominantElement),
		ElementalBalance:    balanceMap(result.ElementalBalance),
		Effects:             make([]effectOutput, 0, len(result.Effects)),
		DurationDescription: result.DurationDescription,
		SuccessDescription:  result.SuccessDescription,
		Description:         result.SpellDescription,
	}
	for _, fx := range result.Effects {
		out.Effects = append(out.Effects, effectOutput{
			Element:    string(fx.Element),
			Effect:     fx.Effect,
			Strength:   string(fx.Strength),
			Proportion: fx.Proportion,
		})
	}
	if result.SpecialEffect != nil {
		out.SpecialEffect = result.SpecialEffect.Name
	}

	if s.store != nil {
		entry := persistence.NewEntry(result, req.Ingredients, req.Incantations, s.now())
		if err := s.store.Append(entry); err != nil {
			return nil, castSpellOutput{}, fmt.Errorf("cast_spell: failed to record cast: %w", err)
		}
		out.EntryID = entry.ID.String()
	}

	s.log.Info("spell cast", "success", result.Success, "success_rate", result.SuccessRate)
	return nil, out, nil
}

func (s *Server) handleVisualizeSpell(_ context.Context, _ *sdkmcp.CallToolRequest, input selectionInput) (*sdkmcp.CallToolResult, visualizeSpellOutput, error) {
	req, err := input.request()
	if err != nil {
		return nil, visualizeSpellOutput{}, err
	}

	viz := s.engine.Visualize(req.Ingredients, req.Incantations)
	out := visualizeSpellOutput{
		ElementalBalance:    balanceMap(viz.ElementalBalance),
		Interactions:        make([]interactionOutput, 0, len(viz.Interactions)),
		InteractionModifier: viz.InteractionModifier,
		SuccessRate:         viz.SuccessRate,
		Power:               viz.Power,
		Duration:            viz.Duration,
		Complexity:          viz.Complexity,
		DominantElement:     string(viz.DominantElement),
	}
	for _, in := range viz.Interactions {
		out.Interactions = append(out.Interactions, interactionOutput{
			Element1:     string(in.Element1),
			Element2:     string(in.Element2),
			Relationship: string(in.RelationshipType),
			Modifier:     in.Modifier,
			Strength:     in.Strength,
		})
	}
	return nil, out, nil
}

func (s *Server) handleRecentCasts(_ context.Context, _ *sdkmcp.CallToolRequest, input recentCastsInput) (*sdkmcp.CallToolResult, recentCastsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.store.Recent(limit)
	if err != nil {
		return nil, recentCastsOutput{}, fmt.Errorf("recent_casts: %w", err)
	}

	out := recentCastsOutput{Casts: make([]castSummary, 0, len(entries))}
	for _, e := range entries {
		out.Casts = append(out.Casts, castSummary{
			ID:        e.ID.String(),
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Success:   e.Success,
			Message:   e.Message,
		})
	}
	return nil, out, nil
}

func balanceMap(b data.Balance) map[string]float64 {
	out := make(map[string]float64, len(b))
	for el, v := range b {
		out[string(el)] = v
	}
	return out
}
