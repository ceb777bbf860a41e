package insight

import (
	"testing"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemExpiring(name string, expiration time.Time) entities.InventoryItem {
	return entities.InventoryItem{
		ID:             uuid.New(),
		Name:           name,
		ExpirationDate: &expiration,
	}
}

func TestPredictRisksEmptyInventory(t *testing.T) {
	risks := PredictRisks(nil, time.Now())
	assert.NotNil(t, risks)
	assert.Empty(t, risks)
}

func TestPredictRisksSkipsItemsWithoutExpiration(t *testing.T) {
	items := []entities.InventoryItem{
		{ID: uuid.New(), Name: "Canned Beans"},
	}
	risks := PredictRisks(items, time.Now())
	assert.Empty(t, risks)
}

func TestPredictRisksExpiredItem(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	items := []entities.InventoryItem{
		itemExpiring("Milk (Whole)", now.Add(-2*time.Hour)),
	}

	risks := PredictRisks(items, now)
	require.Len(t, risks, 1)
	assert.Equal(t, -1, risks[0].DaysRemaining)
	assert.Equal(t, "EXPIRED", risks[0].Message)
	assert.Equal(t, domain.RiskSeverityDanger, risks[0].Severity)
}

func TestPredictRisksWarningWithinWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	items := []entities.InventoryItem{
		itemExpiring("Spinach (Fresh)", now.Add(60*time.Hour)),
	}

	risks := PredictRisks(items, now)
	require.Len(t, risks, 1)
	assert.Equal(t, 2, risks[0].DaysRemaining)
	assert.Equal(t, "Expires in 2 days", risks[0].Message)
	assert.Equal(t, domain.RiskSeverityWarning, risks[0].Severity)
}

func TestPredictRisksExcludesBeyondWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	items := []entities.InventoryItem{
		itemExpiring("Potato", now.AddDate(0, 0, 10)),
		itemExpiring("Apple", now.Add((4*24+1)*time.Hour)),
	}

	risks := PredictRisks(items, now)
	assert.Empty(t, risks)
}

func TestPredictRisksBoundaryExactlyThreeDays(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	items := []entities.InventoryItem{
		itemExpiring("Yogurt (Greek)", now.Add(72*time.Hour)),
	}

	risks := PredictRisks(items, now)
	require.Len(t, risks, 1)
	assert.Equal(t, 3, risks[0].DaysRemaining)
}

func TestPredictRisksSortedAscending(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	items := []entities.InventoryItem{
		itemExpiring("Broccoli", now.Add(50*time.Hour)),
		itemExpiring("Salmon Fillet", now.Add(-30*time.Hour)),
		itemExpiring("Tomato", now.Add(30*time.Hour)),
	}

	risks := PredictRisks(items, now)
	require.Len(t, risks, 3)
	assert.Equal(t, "Salmon Fillet", risks[0].Name)
	assert.Equal(t, "Tomato", risks[1].Name)
	assert.Equal(t, "Broccoli", risks[2].Name)
	assert.True(t, risks[0].DaysRemaining <= risks[1].DaysRemaining)
	assert.True(t, risks[1].DaysRemaining <= risks[2].DaysRemaining)
}
