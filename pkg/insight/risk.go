package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"
)

// riskWindowDays is the inclusive whole-day threshold under which an item
// shows up on the risk list.
const riskWindowDays = 3

// PredictRisks flags every item whose expiration date is known and at most
// riskWindowDays away, expired items included. Items without an expiration
// date are skipped, not an error. The result is sorted ascending by
// DaysRemaining, so expired items (negative) come first. Pure function.
func PredictRisks(items []entities.InventoryItem, now time.Time) []domain.RiskEntry {
	risks := make([]domain.RiskEntry, 0)
	for _, item := range items {
		if item.ExpirationDate == nil {
			continue
		}

		days := wholeDaysUntil(*item.ExpirationDate, now)
		if days > riskWindowDays {
			continue
		}

		entry := domain.RiskEntry{
			ItemID:        item.ID.String(),
			Name:          item.Name,
			DaysRemaining: days,
		}
		if days < 0 {
			entry.Severity = domain.RiskSeverityDanger
			entry.Message = "EXPIRED"
		} else {
			entry.Severity = domain.RiskSeverityWarning
			entry.Message = fmt.Sprintf("Expires in %d days", days)
		}
		risks = append(risks, entry)
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].DaysRemaining < risks[j].DaysRemaining
	})

	return risks
}

// wholeDaysUntil truncates toward negative infinity, so an item that
// expired two hours ago counts as -1 days, not 0.
func wholeDaysUntil(expiration, now time.Time) int {
	return int(math.Floor(expiration.Sub(now).Hours() / 24))
}
