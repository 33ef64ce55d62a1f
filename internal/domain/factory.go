package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownKind is returned by Factory.Create for an unrecognized
// dish-kind tag.
var ErrUnknownKind = errors.New("unknown dish kind")

// Kind tags accepted by the factory, compared case-insensitively.
const (
	KindMainCourse = "principal"
	KindBeverage   = "bebida"
	KindDessert    = "postre"
)

// Factory builds base dishes from a kind tag.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory { return &Factory{} }

// Create constructs a base dish for the given kind tag. The tag is
// matched case-insensitively against "principal", "bebida" and
// "postre"; anything else fails with ErrUnknownKind naming the tag.
func (f *Factory) Create(kind, name string, price decimal.Decimal) (Dish, error) {
	switch strings.ToLower(kind) {
	case KindMainCourse:
		return NewBaseDish(name, price, MainCourse), nil
	case KindBeverage:
		return NewBaseDish(name, price, Beverage), nil
	case KindDessert:
		return NewBaseDish(name, price, Dessert), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
