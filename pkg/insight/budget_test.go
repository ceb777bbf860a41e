package insight

import (
	"context"
	"testing"

	"nourish-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetPlannerProviderAbsentReturnsStaples(t *testing.T) {
	planner := NewBudgetPlanner(notConfiguredProvider(), testLogger())

	items := planner.Generate(context.Background(), 25.0, "week", "Vegan", nil)
	require.Len(t, items, 5)
	assert.Equal(t, "Rice (White)", items[0].Name)
	for _, item := range items {
		assert.Equal(t, entities.ShoppingSourceGenerated, item.SourceTag)
	}
}

func TestBudgetPlannerNilProviderReturnsStaples(t *testing.T) {
	planner := NewBudgetPlanner(nil, testLogger())

	items := planner.Generate(context.Background(), 25.0, "week", "Vegan", nil)
	require.Len(t, items, 5)
	assert.Equal(t, "Rice (White)", items[0].Name)
}

func TestBudgetPlannerProviderFailureReturnsEmptyList(t *testing.T) {
	planner := NewBudgetPlanner(failingProvider(), testLogger())

	items := planner.Generate(context.Background(), 25.0, "week", "Vegan", nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseShoppingListGoldenCase(t *testing.T) {
	items := parseShoppingList("Milk|3.50\n- Rice|2\nbadline\n• Eggs|$4.00")

	require.Len(t, items, 3)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, 3.50, items[0].EstimatedPrice)
	assert.Equal(t, "Rice", items[1].Name)
	assert.Equal(t, 2.0, items[1].EstimatedPrice)
	assert.Equal(t, "Eggs", items[2].Name)
	assert.Equal(t, 4.0, items[2].EstimatedPrice)
}

func TestParseShoppingListDropsUnparseablePrice(t *testing.T) {
	items := parseShoppingList("Milk|free\nBread|1.20")

	require.Len(t, items, 1)
	assert.Equal(t, "Bread", items[0].Name)
}

func TestBudgetPlannerParsesProviderReply(t *testing.T) {
	provider := &stubProvider{reply: "Tofu|2.50\nLentils|1.80"}
	planner := NewBudgetPlanner(provider, testLogger())

	items := planner.Generate(context.Background(), 10.0, "week", "Vegan", []string{"Rice (White)"})
	require.Len(t, items, 2)
	assert.Equal(t, "Tofu", items[0].Name)
	assert.Equal(t, 1.80, items[1].EstimatedPrice)
}
