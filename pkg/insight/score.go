package insight

import (
	"fmt"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"
)

const (
	baseScore      = 50
	highWasteRatio = 0.30
)

// AnalyzeImpact computes the sustainability score and its insights from a
// snapshot of inventory and the full consumption log. Checks run in a fixed
// order (waste ratio, category balance, risk count) and insights keep that
// order. The result is clamped to [0,100] and the function is pure: two
// calls with the same snapshot and reference time return the same result.
func AnalyzeImpact(items []entities.InventoryItem, logs []entities.ConsumptionLog, now time.Time) domain.ScoreResult {
	score := baseScore
	insights := make([]string, 0)

	// 1) Waste ratio.
	consumed, wasted := 0, 0
	for _, l := range logs {
		switch l.Status {
		case entities.LogStatusConsumed:
			consumed++
		case entities.LogStatusWasted:
			wasted++
		}
	}
	if total := consumed + wasted; total > 0 {
		ratio := float64(wasted) / float64(total)
		switch {
		case ratio == 0:
			score += 20
			insights = append(insights, "Excellent: zero waste recorded recently. Keep it up!")
		case ratio > highWasteRatio:
			score -= 15
			category := mostWastedCategory(logs)
			insights = append(insights, fmt.Sprintf(
				"Alert: over 30%% of your logged food went to waste, mostly %s. Freeze or cook these before they expire.",
				category,
			))
		default:
			score += 5
		}
	}

	// 2) Category balance, by item count.
	if len(items) > 0 {
		dominant, dominantCount := dominantCategory(items)
		dominantRatio := float64(dominantCount) / float64(len(items))

		hasVegetable, hasFruit := false, false
		for _, item := range items {
			switch item.Category {
			case "Vegetable":
				hasVegetable = true
			case "Fruit":
				hasFruit = true
			}
		}

		switch {
		case dominantRatio > 0.5 && len(items) > 3:
			score -= 5
			insights = append(insights, imbalanceInsight(dominant))
		case !hasVegetable && !hasFruit:
			score -= 5
			insights = append(insights, "Nutrient gap: no fresh produce in your inventory. Add vegetables or fruit for vitamins and fiber.")
		default:
			score += 10
			if dominantRatio < 0.4 {
				insights = append(insights, "Well-balanced inventory across food groups. Great for varied meals!")
			}
		}
	}

	// 3) Expiration risk count.
	if risks := PredictRisks(items, now); len(risks) > 2 {
		score -= 10
		insights = append(insights, fmt.Sprintf(
			"Action required: %d items expire within %d days. Plan meals around them now.",
			len(risks), riskWindowDays,
		))
	}

	return domain.ScoreResult{
		Score:    clampScore(score),
		Insights: insights,
	}
}

// mostWastedCategory returns the category with the most Wasted entries.
// On a tie the first category to reach the winning count in log order wins.
func mostWastedCategory(logs []entities.ConsumptionLog) string {
	counts := make(map[string]int)
	best, bestCount := "Other", 0
	for _, l := range logs {
		if l.Status != entities.LogStatusWasted {
			continue
		}
		counts[l.Category]++
		if counts[l.Category] > bestCount {
			best, bestCount = l.Category, counts[l.Category]
		}
	}
	return best
}

// dominantCategory counts items (not quantities) per category. Ties break
// to the first category reaching the maximum in inventory order.
func dominantCategory(items []entities.InventoryItem) (string, int) {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, item := range items {
		counts[item.Category]++
		if counts[item.Category] > bestCount {
			best, bestCount = item.Category, counts[item.Category]
		}
	}
	return best, bestCount
}

func imbalanceInsight(category string) string {
	switch category {
	case "Grain", "Meat":
		return fmt.Sprintf("Your inventory is mostly %s. Add fresh produce to cover the vitamin gap.", category)
	case "Dairy":
		return "Your inventory leans heavily on Dairy, which spoils quickly. Plan to use it soon and diversify."
	case "Fruit":
		return "Lots of Fruit in stock. Balance the natural sugars with some protein and vegetables."
	default:
		return fmt.Sprintf("Most of your inventory is %s. A wider mix of categories makes meal planning easier.", category)
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
