package insight

import (
	"testing"
	"time"

	"nourish-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemInCategory(name, category string) entities.InventoryItem {
	return entities.InventoryItem{Name: name, Category: category}
}

func logWithStatus(category, status string) entities.ConsumptionLog {
	return entities.ConsumptionLog{Category: category, Status: status}
}

func TestAnalyzeImpactNoHistoryNoInventory(t *testing.T) {
	result := AnalyzeImpact(nil, nil, time.Now())
	assert.Equal(t, 50, result.Score)
	assert.Empty(t, result.Insights)
}

func TestAnalyzeImpactZeroWasteBonus(t *testing.T) {
	logs := []entities.ConsumptionLog{
		logWithStatus("Dairy", entities.LogStatusConsumed),
		logWithStatus("Fruit", entities.LogStatusConsumed),
	}

	result := AnalyzeImpact(nil, logs, time.Now())
	assert.Equal(t, 70, result.Score)
	require.Len(t, result.Insights, 1)
	assert.Contains(t, result.Insights[0], "zero waste")
}

func TestAnalyzeImpactHighWastePenalty(t *testing.T) {
	logs := []entities.ConsumptionLog{
		logWithStatus("Dairy", entities.LogStatusWasted),
		logWithStatus("Dairy", entities.LogStatusWasted),
		logWithStatus("Fruit", entities.LogStatusConsumed),
	}

	result := AnalyzeImpact(nil, logs, time.Now())
	assert.Equal(t, 35, result.Score)
	require.Len(t, result.Insights, 1)
	assert.Contains(t, result.Insights[0], "Dairy")
}

func TestAnalyzeImpactModerateWaste(t *testing.T) {
	logs := []entities.ConsumptionLog{
		logWithStatus("Dairy", entities.LogStatusWasted),
		logWithStatus("Fruit", entities.LogStatusConsumed),
		logWithStatus("Fruit", entities.LogStatusConsumed),
		logWithStatus("Grain", entities.LogStatusConsumed),
	}

	result := AnalyzeImpact(nil, logs, time.Now())
	assert.Equal(t, 55, result.Score)
	assert.Empty(t, result.Insights)
}

func TestAnalyzeImpactDominantCategoryPenalty(t *testing.T) {
	items := []entities.InventoryItem{
		itemInCategory("Milk (Whole)", "Dairy"),
		itemInCategory("Cheddar Cheese", "Dairy"),
		itemInCategory("Yogurt (Greek)", "Dairy"),
		itemInCategory("Apple", "Fruit"),
	}

	result := AnalyzeImpact(items, nil, time.Now())
	assert.Equal(t, 45, result.Score)
	require.Len(t, result.Insights, 1)
	assert.Contains(t, result.Insights[0], "Dairy")
}

func TestAnalyzeImpactNoProducePenalty(t *testing.T) {
	items := []entities.InventoryItem{
		itemInCategory("Rice (White)", "Grain"),
		itemInCategory("Chicken Breast", "Meat"),
	}

	result := AnalyzeImpact(items, nil, time.Now())
	assert.Equal(t, 45, result.Score)
	require.Len(t, result.Insights, 1)
	assert.Contains(t, result.Insights[0], "Nutrient gap")
}

func TestAnalyzeImpactWellBalancedInventory(t *testing.T) {
	items := []entities.InventoryItem{
		itemInCategory("Milk (Whole)", "Dairy"),
		itemInCategory("Apple", "Fruit"),
		itemInCategory("Carrot", "Vegetable"),
		itemInCategory("Rice (White)", "Grain"),
		itemInCategory("Chicken Breast", "Meat"),
	}

	result := AnalyzeImpact(items, nil, time.Now())
	assert.Equal(t, 60, result.Score)
	require.Len(t, result.Insights, 1)
	assert.Contains(t, result.Insights[0], "Well-balanced")
}

func TestAnalyzeImpactRiskCountPenalty(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	soon := now.Add(24 * time.Hour)
	items := []entities.InventoryItem{
		{Name: "Milk (Whole)", Category: "Dairy", ExpirationDate: &soon},
		{Name: "Spinach (Fresh)", Category: "Vegetable", ExpirationDate: &soon},
		{Name: "Banana", Category: "Fruit", ExpirationDate: &soon},
	}

	result := AnalyzeImpact(items, nil, now)
	// +10 balance (with its insight), -10 risk count.
	assert.Equal(t, 50, result.Score)
	require.Len(t, result.Insights, 2)
	assert.Contains(t, result.Insights[0], "Well-balanced")
	assert.Contains(t, result.Insights[1], "3 items expire")
}

func TestAnalyzeImpactIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	soon := now.Add(24 * time.Hour)
	items := []entities.InventoryItem{
		{Name: "Milk (Whole)", Category: "Dairy", ExpirationDate: &soon},
		{Name: "Apple", Category: "Fruit"},
	}
	logs := []entities.ConsumptionLog{
		logWithStatus("Dairy", entities.LogStatusWasted),
		logWithStatus("Fruit", entities.LogStatusConsumed),
	}

	first := AnalyzeImpact(items, logs, now)
	second := AnalyzeImpact(items, logs, now)
	assert.Equal(t, first, second)
}

func TestAnalyzeImpactScoreStaysInRange(t *testing.T) {
	// Every penalty at once still keeps the score inside the range.
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-48 * time.Hour)
	items := []entities.InventoryItem{
		{Name: "Chicken Breast", Category: "Meat", ExpirationDate: &expired},
		{Name: "Ground Beef", Category: "Meat", ExpirationDate: &expired},
		{Name: "Salmon Fillet", Category: "Meat", ExpirationDate: &expired},
		{Name: "Rice (White)", Category: "Grain"},
	}
	logs := []entities.ConsumptionLog{
		logWithStatus("Meat", entities.LogStatusWasted),
		logWithStatus("Meat", entities.LogStatusWasted),
		logWithStatus("Grain", entities.LogStatusConsumed),
	}

	result := AnalyzeImpact(items, logs, now)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Equal(t, 20, result.Score)
}

func TestClampScoreBounds(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 100, clampScore(150))
	assert.Equal(t, 42, clampScore(42))
}

func TestMostWastedCategoryTieBreaksToFirst(t *testing.T) {
	logs := []entities.ConsumptionLog{
		logWithStatus("Fruit", entities.LogStatusWasted),
		logWithStatus("Dairy", entities.LogStatusWasted),
	}
	assert.Equal(t, "Fruit", mostWastedCategory(logs))
}
