package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

const (
	ingredientUsage  = `ingredient "<name>" [affinity: <element>] [age: fresh|old|ancient]`
	incantationUsage = `incantation "<name>" [language: <language>] [affinity: <element>] [kind: spell|ritual|support|sacrifice|other] [moon: new|waxing|full|waning]`
)

// MapError turns a participle error into guidance on how a formula is written.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("a cast formula needs at least one item: %s", ingredientUsage)
	}

	where := ""
	var perr participle.Error
	if errors.As(err, &perr) {
		where = fmt.Sprintf(" (column %d)", perr.Position().Column)
	}

	// Point at the item the user was most likely writing.
	last := input
	if i := strings.LastIndex(input, "+"); i >= 0 {
		last = input[i+1:]
	}
	fields := strings.Fields(strings.ToLower(last))
	if len(fields) > 0 {
		switch fields[0] {
		case "ingredient":
			return fmt.Errorf("invalid formula%s, an ingredient must be: %s", where, ingredientUsage)
		case "incantation":
			return fmt.Errorf("invalid formula%s, an incantation must be: %s", where, incantationUsage)
		}
	}
	return fmt.Errorf("invalid formula%s, items are joined with + and must be: %s or %s", where, ingredientUsage, incantationUsage)
}
