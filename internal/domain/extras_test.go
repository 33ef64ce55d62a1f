package domain_test

import (
	"testing"

	"github.com/comanda/comanda/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePizza(t *testing.T) domain.Dish {
	t.Helper()
	dish, err := domain.NewFactory().Create("principal", "Pizza Margherita", decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	return dish
}

func TestExtras_Surcharges(t *testing.T) {
	pizza := basePizza(t)

	withCheese := domain.WithExtraCheese(pizza)
	assert.True(t, withCheese.Price().Equal(decimal.RequireFromString("14.00")))
	assert.Equal(t, "Plato Principal: Pizza Margherita (con extra queso)", withCheese.Description())

	withBoth := domain.WithExtraSauce(withCheese, "Picante")
	assert.True(t, withBoth.Price().Equal(decimal.RequireFromString("14.75")))
	assert.Equal(t, "Plato Principal: Pizza Margherita (con extra queso) (con extra salsa Picante)", withBoth.Description())
}

func TestExtras_NestingOrderIndependentPrice(t *testing.T) {
	cheeseFirst := domain.WithExtraSauce(domain.WithExtraCheese(basePizza(t)), "Picante")
	sauceFirst := domain.WithExtraCheese(domain.WithExtraSauce(basePizza(t), "Picante"))

	assert.True(t, cheeseFirst.Price().Equal(sauceFirst.Price()))
	assert.True(t, cheeseFirst.Price().Equal(decimal.RequireFromString("14.75")))
}

func TestExtras_NameForwardsToBase(t *testing.T) {
	wrapped := domain.WithExtraSauce(domain.WithExtraCheese(basePizza(t)), "BBQ")
	assert.Equal(t, "Pizza Margherita", wrapped.Name())
}

func TestExtras_RecomputedOnEveryCall(t *testing.T) {
	wrapped := domain.WithExtraCheese(basePizza(t))

	first := wrapped.Price()
	second := wrapped.Price()
	assert.True(t, first.Equal(second))
	assert.Equal(t, wrapped.Description(), wrapped.Description())
}

func TestExtras_WrappedDishUnchanged(t *testing.T) {
	pizza := basePizza(t)
	domain.WithExtraCheese(pizza)

	assert.True(t, pizza.Price().Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "Plato Principal: Pizza Margherita", pizza.Description())
}

func TestApplyExtra(t *testing.T) {
	pizza := basePizza(t)

	cheese, err := domain.ApplyExtra(pizza, "queso")
	require.NoError(t, err)
	assert.Contains(t, cheese.Description(), "(con extra queso)")

	sauce, err := domain.ApplyExtra(pizza, "salsa:Caramelo")
	require.NoError(t, err)
	assert.Contains(t, sauce.Description(), "(con extra salsa Caramelo)")

	_, err = domain.ApplyExtra(pizza, "tocino")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownExtra)
	assert.Contains(t, err.Error(), "tocino")
}

func TestExtras_DeepNesting(t *testing.T) {
	dish := basePizza(t)
	for i := 0; i < 4; i++ {
		dish = domain.WithExtraCheese(dish)
	}

	// 12.50 + 4 * 1.50
	assert.True(t, dish.Price().Equal(decimal.RequireFromString("18.50")))
	assert.Equal(t, "Pizza Margherita", dish.Name())
}
