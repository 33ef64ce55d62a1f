package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownExtra is returned by ApplyExtra for an unrecognized extra
// tag.
var ErrUnknownExtra = errors.New("unknown extra")

var (
	cheeseSurcharge = decimal.RequireFromString("1.50")
	sauceSurcharge  = decimal.RequireFromString("0.75")
)

// extraCheese wraps a dish with an extra-cheese surcharge.
type extraCheese struct {
	wrapped Dish
}

// WithExtraCheese decorates a dish with extra cheese: +1.50 on the
// price, " (con extra queso)" on the description.
func WithExtraCheese(d Dish) Dish { return &extraCheese{wrapped: d} }

func (e *extraCheese) Name() string { return e.wrapped.Name() }

func (e *extraCheese) Price() decimal.Decimal { return e.wrapped.Price().Add(cheeseSurcharge) }

func (e *extraCheese) Description() string { return e.wrapped.Description() + " (con extra queso)" }

// extraSauce wraps a dish with a sauce surcharge for a given sauce
// kind.
type extraSauce struct {
	wrapped Dish
	sauce   string
}

// WithExtraSauce decorates a dish with an extra sauce: +0.75 on the
// price, " (con extra salsa <sauce>)" on the description.
func WithExtraSauce(d Dish, sauce string) Dish {
	return &extraSauce{wrapped: d, sauce: sauce}
}

func (e *extraSauce) Name() string { return e.wrapped.Name() }

func (e *extraSauce) Price() decimal.Decimal { return e.wrapped.Price().Add(sauceSurcharge) }

func (e *extraSauce) Description() string {
	return e.wrapped.Description() + " (con extra salsa " + e.sauce + ")"
}

// ApplyExtra decorates a dish according to a scenario extra tag:
// "queso" or "salsa:<kind>".
func ApplyExtra(d Dish, extra string) (Dish, error) {
	switch {
	case extra == "queso":
		return WithExtraCheese(d), nil
	case strings.HasPrefix(extra, "salsa:"):
		return WithExtraSauce(d, strings.TrimPrefix(extra, "salsa:")), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtra, extra)
	}
}
