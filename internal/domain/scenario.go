package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Scenario is a declarative script for the demonstration: dishes to
// showcase, orders to build, and the steps to drive each order
// through. Scenarios load from YAML; DefaultScenario is built in.
type Scenario struct {
	Title    string        `yaml:"title" json:"title"`
	Showcase []DishSpec    `yaml:"showcase,omitempty" json:"showcase,omitempty"`
	Orders   []OrderScript `yaml:"orders" json:"orders"`
}

// DishSpec describes one dish: a factory kind tag, name, price, and
// the extras to wrap it with, in order. Extras are "queso" or
// "salsa:<kind>".
type DishSpec struct {
	Kind   string   `yaml:"kind" json:"kind"`
	Name   string   `yaml:"name" json:"name"`
	Price  string   `yaml:"price" json:"price"`
	Extras []string `yaml:"extras,omitempty" json:"extras,omitempty"`
}

// ParsePrice parses the spec's price string as a decimal.
func (d DishSpec) ParsePrice() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing price for %q: %w", d.Name, err)
	}
	return price, nil
}

// OrderScript describes one order: who observes it, what goes in it,
// and the steps applied after the items are added.
type OrderScript struct {
	Observers []string   `yaml:"observers,omitempty" json:"observers,omitempty"`
	Items     []DishSpec `yaml:"items" json:"items"`
	Steps     []Step     `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// Step is either a state transition (State set to a state tag) or an
// observer removal (RemoveObserver set to a customer name). Exactly
// one field must be set.
type Step struct {
	State          string `yaml:"state,omitempty" json:"state,omitempty"`
	RemoveObserver string `yaml:"remove_observer,omitempty" json:"remove_observer,omitempty"`
}

// Validate checks every tag in the scenario before anything runs:
// dish kinds, extras, prices, step states, and removal targets.
func (s Scenario) Validate() error {
	for _, spec := range s.Showcase {
		if err := validateDishSpec(spec); err != nil {
			return err
		}
	}
	for i, script := range s.Orders {
		for _, spec := range script.Items {
			if err := validateDishSpec(spec); err != nil {
				return fmt.Errorf("order %d: %w", i+1, err)
			}
		}
		for _, step := range script.Steps {
			switch {
			case step.State != "" && step.RemoveObserver != "":
				return fmt.Errorf("order %d: step sets both state and remove_observer", i+1)
			case step.State != "":
				if _, err := ParseState(step.State); err != nil {
					return fmt.Errorf("order %d: %w", i+1, err)
				}
			case step.RemoveObserver != "":
				if !slices.Contains(script.Observers, step.RemoveObserver) {
					return fmt.Errorf("order %d: remove_observer %q is not a registered observer", i+1, step.RemoveObserver)
				}
			default:
				return fmt.Errorf("order %d: empty step", i+1)
			}
		}
	}
	return nil
}

func validateDishSpec(spec DishSpec) error {
	// Dry-run the factory and decorators so a bad tag fails before the
	// scenario starts mutating orders.
	price, err := spec.ParsePrice()
	if err != nil {
		return err
	}
	dish, err := NewFactory().Create(spec.Kind, spec.Name, price)
	if err != nil {
		return err
	}
	for _, extra := range spec.Extras {
		if dish, err = ApplyExtra(dish, extra); err != nil {
			return err
		}
	}
	return nil
}

// DefaultScenario is the built-in demonstration: a factory and
// decorator showcase, an order observed by Ana and Juan that loses
// Juan before delivery, and a second order observed by Luis.
func DefaultScenario() Scenario {
	return Scenario{
		Title: "Sistema de Gestión de Pedidos del Restaurante",
		Showcase: []DishSpec{
			{Kind: KindMainCourse, Name: "Pizza Margherita", Price: "12.50", Extras: []string{"queso", "salsa:Picante"}},
			{Kind: KindBeverage, Name: "Refresco de Cola", Price: "2.00"},
			{Kind: KindDessert, Name: "Helado de Chocolate", Price: "4.75"},
			{Kind: KindMainCourse, Name: "Hamburguesa Clásica", Price: "8.00", Extras: []string{"queso"}},
		},
		Orders: []OrderScript{
			{
				Observers: []string{"Ana", "Juan"},
				Items: []DishSpec{
					{Kind: KindMainCourse, Name: "Pizza Margherita", Price: "12.50", Extras: []string{"queso", "salsa:Picante"}},
					{Kind: KindBeverage, Name: "Refresco de Cola", Price: "2.00"},
					{Kind: KindDessert, Name: "Flan Casero", Price: "3.50", Extras: []string{"salsa:Caramelo"}},
				},
				Steps: []Step{
					{State: InPreparation.Tag()},
					{State: ReadyForPickup.Tag()},
					{RemoveObserver: "Juan"},
					{State: Delivered.Tag()},
				},
			},
			{
				Observers: []string{"Luis"},
				Items: []DishSpec{
					{Kind: KindBeverage, Name: "Jugo de Naranja", Price: "2.50"},
				},
				Steps: []Step{
					{State: InPreparation.Tag()},
					{State: ReadyForPickup.Tag()},
					{State: Delivered.Tag()},
				},
			},
		},
	}
}
