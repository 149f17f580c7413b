package parser

import (
	"fmt"
	"strings"

	"github.com/mandarini/astra-arcana/internal/data"
)

var formulaParser = Build()

// Parse reads an inline cast formula such as
//
//	ingredient "Dragon scale" affinity: fire age: ancient + incantation "Ignis" language: Latin kind: spell
//
// into a CastRequest. Values are not validated against the tables; unknown
// elements or modifiers fall back the same way they do in a request file.
func Parse(input string) (*data.CastRequest, error) {
	formula, err := formulaParser.ParseString("", input)
	if err != nil {
		return nil, MapError(input, err)
	}

	req := &data.CastRequest{
		Ingredients:  []data.Ingredient{},
		Incantations: []data.Incantation{},
	}
	for _, item := range formula.Items {
		switch strings.ToLower(item.Kind) {
		case "ingredient":
			ing, err := toIngredient(item)
			if err != nil {
				return nil, err
			}
			req.Ingredients = append(req.Ingredients, ing)
		case "incantation":
			inc, err := toIncantation(item)
			if err != nil {
				return nil, err
			}
			req.Incantations = append(req.Incantations, inc)
		}
	}
	return req, nil
}

func toIngredient(item *Item) (data.Ingredient, error) {
	ing := data.Ingredient{Name: item.Name}
	for _, a := range item.Attrs {
		switch strings.ToLower(a.Key) {
		case "affinity":
			ing.Affinity = data.Element(strings.ToLower(a.Value))
		case "age":
			ing.Age = data.Age(strings.ToLower(a.Value))
		default:
			return ing, fmt.Errorf("ingredient %q: unknown attribute %q, expected: %s", item.Name, a.Key, ingredientUsage)
		}
	}
	return ing, nil
}

func toIncantation(item *Item) (data.Incantation, error) {
	inc := data.Incantation{Name: item.Name, Kind: data.KindSpell}
	for _, a := range item.Attrs {
		switch strings.ToLower(a.Key) {
		case "affinity":
			inc.Affinity = data.Element(strings.ToLower(a.Value))
		case "language":
			inc.Language = data.Language(a.Value)
		case "kind":
			inc.Kind = data.Kind(strings.ToLower(a.Value))
		case "moon", "moonphase":
			inc.MoonPhase = data.MoonPhase(strings.ToLower(a.Value))
		default:
			return inc, fmt.Errorf("incantation %q: unknown attribute %q, expected: %s", item.Name, a.Key, incantationUsage)
		}
	}
	return inc, nil
}
