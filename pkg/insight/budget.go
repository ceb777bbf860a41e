package insight

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nourish-backend/domain"
	"nourish-backend/entities"
	"nourish-backend/pkg/gateway"

	"github.com/rs/zerolog"
)

// BudgetPlanner turns a budget figure into shopping suggestions.
//
// The two failure modes are deliberately different: with no provider
// configured the caller gets a fixed staple list, while a provider that was
// configured but failed yields an empty list. Tests rely on telling the two
// apart.
type BudgetPlanner struct {
	provider gateway.Provider
	log      zerolog.Logger
}

func NewBudgetPlanner(provider gateway.Provider, log zerolog.Logger) *BudgetPlanner {
	return &BudgetPlanner{provider: provider, log: log}
}

// defaultStaples is the provider-absent fallback. The fixed list is
// intentionally budget- and diet-independent.
func defaultStaples() []domain.ShoppingListItem {
	return []domain.ShoppingListItem{
		{Name: "Rice (White)", EstimatedPrice: 2.00, SourceTag: entities.ShoppingSourceGenerated},
		{Name: "Eggs (Dozen)", EstimatedPrice: 3.50, SourceTag: entities.ShoppingSourceGenerated},
		{Name: "Milk (Whole)", EstimatedPrice: 1.50, SourceTag: entities.ShoppingSourceGenerated},
		{Name: "Bread", EstimatedPrice: 1.20, SourceTag: entities.ShoppingSourceGenerated},
		{Name: "Seasonal Vegetables", EstimatedPrice: 4.00, SourceTag: entities.ShoppingSourceGenerated},
	}
}

func (g *BudgetPlanner) Generate(ctx context.Context, budget float64, period, dietTag string, itemNames []string) []domain.ShoppingListItem {
	if g.provider == nil {
		return defaultStaples()
	}

	owned := "nothing yet"
	if len(itemNames) > 0 {
		owned = strings.Join(itemNames, ", ")
	}
	prompt := fmt.Sprintf(
		"Suggest grocery items for a %s period on a total budget of %.2f. The diet is %q. "+
			"Already owned: %s. Respond with one item per line in the exact format Name|Price "+
			"with no other text.",
		period, budget, dietTag, owned,
	)

	raw, err := g.provider.Generate(ctx, "You are a frugal grocery planning assistant.", prompt)
	if errors.Is(err, gateway.ErrNotConfigured) {
		return defaultStaples()
	}
	if err != nil {
		g.log.Warn().Err(err).Msg("budget list provider call failed")
		return []domain.ShoppingListItem{}
	}

	return parseShoppingList(raw)
}

// parseShoppingList reads Name|Price lines. Bullet markers are stripped
// from the name, a currency symbol from the price. A line missing the
// separator or carrying an unparseable price is dropped silently.
func parseShoppingList(raw string) []domain.ShoppingListItem {
	items := make([]domain.ShoppingListItem, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") {
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		name := strings.TrimSpace(parts[0])
		name = strings.TrimPrefix(name, "- ")
		name = strings.TrimPrefix(name, "• ")
		name = strings.TrimSpace(name)

		priceText := strings.TrimSpace(parts[1])
		priceText = strings.TrimLeft(priceText, "$€£")
		price, err := strconv.ParseFloat(strings.TrimSpace(priceText), 64)
		if err != nil {
			continue
		}

		items = append(items, domain.ShoppingListItem{
			Name:           name,
			EstimatedPrice: price,
			SourceTag:      entities.ShoppingSourceGenerated,
		})
	}
	return items
}
