package engine

import (
	"slices"

	"github.com/mandarini/astra-arcana/internal/data"
)

const (
	opposedCoefficient  = -0.5
	neighborCoefficient = 0.25
)

// RelationshipType classifies how a relates to b. Opposition wins over neighborhood.
func (e *Engine) RelationshipType(a, b data.Element) data.RelationshipType {
	defA, okA := e.tables.Element(a)
	_, okB := e.tables.Element(b)
	if !okA || !okB || a == b {
		return data.Unrelated
	}
	if defA.Opposite == b {
		return data.Opposite
	}
	if slices.Contains(defA.Neighbors, b) {
		return data.Neighbor
	}
	return data.Unrelated
}

// Relationship returns the interaction coefficient between two elements:
// -0.5 for opposites, 0.25 for neighbors and 0 otherwise.
func (e *Engine) Relationship(a, b data.Element) float64 {
	switch e.RelationshipType(a, b) {
	case data.Opposite:
		return opposedCoefficient
	case data.Neighbor:
		return neighborCoefficient
	default:
		return 0
	}
}
