package insight

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"nourish-backend/entities"
	"nourish-backend/pkg/gateway"

	"github.com/rs/zerolog"
)

const emptyInventoryPlan = "Add items to your inventory to get a meal plan!"

// Placeholders used when a bucket has nothing to offer. The plan never
// fails on a sparse inventory.
const (
	placeholderProtein   = "canned beans"
	placeholderVegetable = "seasonal greens"
	placeholderFruit     = "a banana"
)

// Planner builds a three-meal plan from the inventory snapshot. The provider
// is an enhancement only: any failure, including an empty response, lands on
// the deterministic plan.
type Planner struct {
	provider gateway.Provider
	log      zerolog.Logger
}

func NewPlanner(provider gateway.Provider, log zerolog.Logger) *Planner {
	return &Planner{provider: provider, log: log}
}

func (p *Planner) Generate(ctx context.Context, items []entities.InventoryItem, dietTag string) string {
	if len(items) == 0 {
		return emptyInventoryPlan
	}

	sorted := sortByExpiration(items)

	if p.provider != nil {
		names := make([]string, 0, len(sorted))
		for _, item := range sorted {
			names = append(names, item.Name)
		}
		prompt := fmt.Sprintf(
			"Create a one-day meal plan with exactly three sections titled Breakfast, Lunch and Dinner, "+
				"formatted as markdown. The diet is %q. Use only these ingredients, listed from "+
				"closest to expiry to furthest, and prioritize the earliest ones: %s.",
			dietTag, strings.Join(names, ", "),
		)
		text, err := p.provider.Generate(ctx, "You are a zero-waste meal planning assistant.", prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		if err != nil {
			p.log.Warn().Err(err).Msg("meal plan provider call failed, using deterministic plan")
		}
	}

	return deterministicPlan(sorted, dietTag)
}

// deterministicPlan anchors each meal on the soonest-expiring item of its
// bucket: protein-like for lunch and dinner, vegetable as the side, fruit
// for breakfast.
func deterministicPlan(sorted []entities.InventoryItem, dietTag string) string {
	protein := placeholderProtein
	vegetable := placeholderVegetable
	fruit := placeholderFruit

	foundProtein, foundVegetable, foundFruit := false, false, false
	for _, item := range sorted {
		switch item.Category {
		case "Meat", "Dairy", "Grain", "Protein":
			if !foundProtein {
				protein, foundProtein = item.Name, true
			}
		case "Vegetable":
			if !foundVegetable {
				vegetable, foundVegetable = item.Name, true
			}
		case "Fruit":
			if !foundFruit {
				fruit, foundFruit = item.Name, true
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Breakfast: %s smoothie with %s.\n", dietTag, fruit)
	fmt.Fprintf(&b, "Lunch: %s salad with %s on the side.\n", protein, vegetable)
	fmt.Fprintf(&b, "Dinner: Grilled %s with %s and herbs.\n", protein, vegetable)
	b.WriteString("Eco-tip: cooking what expires first saves money and cuts waste.")
	return b.String()
}

// sortByExpiration orders items soonest-expiring first. Items without an
// expiration date sort last via a far-future sentinel.
func sortByExpiration(items []entities.InventoryItem) []entities.InventoryItem {
	sentinel := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	sorted := make([]entities.InventoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sentinel, sentinel
		if sorted[i].ExpirationDate != nil {
			a = *sorted[i].ExpirationDate
		}
		if sorted[j].ExpirationDate != nil {
			b = *sorted[j].ExpirationDate
		}
		return a.Before(b)
	})
	return sorted
}
