package persistence

import (
	"time"

	"github.com/google/uuid"

	"github.com/mandarini/astra-arcana/internal/data"
)

// FailureMessage is logged in place of the description when a spell fails.
const FailureMessage = "Spell failed to cast correctly."

// Entry records one cast.
type Entry struct {
	ID           uuid.UUID                `json:"id"`
	Timestamp    time.Time                `json:"timestamp"`
	Ingredients  []data.Ingredient        `json:"ingredients"`
	Incantations []data.Incantation       `json:"incantations"`
	Success      bool                     `json:"success"`
	Message      string                   `json:"message"`
	SpellResult  data.CompleteSpellResult `json:"spellResult"`
}

// NewEntry builds a log entry for a finished cast.
func NewEntry(result data.CompleteSpellResult, ingredients []data.Ingredient, incantations []data.Incantation, now time.Time) Entry {
	msg := FailureMessage
	if result.Success {
		msg = result.SpellDescription
	}
	if ingredients == nil {
		ingredients = []data.Ingredient{}
	}
	if incantations == nil {
		incantations = []data.Incantation{}
	}
	return Entry{
		ID:           uuid.New(),
		Timestamp:    now.UTC(),
		Ingredients:  ingredients,
		Incantations: incantations,
		Success:      result.Success,
		Message:      msg,
		SpellResult:  result,
	}
}
