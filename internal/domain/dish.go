package domain

import "github.com/shopspring/decimal"

// Dish is a priced, named, describable menu entry. Implementations are
// immutable: extras wrap a Dish instead of mutating it.
type Dish interface {
	Name() string
	Price() decimal.Decimal
	Description() string
}

// Category classifies a base dish on the menu.
type Category int

const (
	MainCourse Category = iota
	Beverage
	Dessert
)

func (c Category) String() string {
	switch c {
	case MainCourse:
		return "Plato Principal"
	case Beverage:
		return "Bebida"
	case Dessert:
		return "Postre"
	default:
		return "Desconocido"
	}
}

// BaseDish is the innermost dish of any decoration chain.
type BaseDish struct {
	name     string
	price    decimal.Decimal
	category Category
}

// NewBaseDish creates an undecorated dish. Price is accepted as given;
// sign validation is out of scope.
func NewBaseDish(name string, price decimal.Decimal, category Category) *BaseDish {
	return &BaseDish{name: name, price: price, category: category}
}

func (d *BaseDish) Name() string { return d.name }

func (d *BaseDish) Price() decimal.Decimal { return d.price }

func (d *BaseDish) Description() string { return d.category.String() + ": " + d.name }

func (d *BaseDish) Category() Category { return d.category }
