package domain

import (
	"errors"
)

var (
	MessageSuccessGetInsights  = "impact insights retrieved successfully"
	MessageSuccessGetRisks     = "expiration risks retrieved successfully"
	MessageSuccessGetMealPlan  = "meal plan generated successfully"
	MessageSuccessGetChatReply = "assistant reply generated successfully"

	MessageFailedGetInsights  = "failed to retrieve impact insights"
	MessageFailedGetRisks     = "failed to retrieve expiration risks"
	MessageFailedGetMealPlan  = "failed to generate meal plan"
	MessageFailedGetChatReply = "failed to generate assistant reply"

	ErrInvalidBudget = errors.New("budget must be positive")
	ErrEmptyMessage  = errors.New("message must not be empty")
)

const (
	RiskSeverityDanger  = "danger"
	RiskSeverityWarning = "warning"
)

type (
	// ScoreResult is the outcome of an impact analysis. Score is always in
	// [0,100]; insights keep evaluation order, they are never sorted by
	// severity.
	ScoreResult struct {
		Score    int      `json:"score"`
		Insights []string `json:"insights"`
	}

	// RiskEntry describes one soon-to-expire (or already expired) item.
	// DaysRemaining is negative for expired items.
	RiskEntry struct {
		ItemID        string `json:"item_id"`
		Name          string `json:"name"`
		DaysRemaining int    `json:"days_remaining"`
		Message       string `json:"message"`
		Severity      string `json:"severity"` // "danger" or "warning"
	}

	// ShoppingListItem is a suggestion produced by the budget list
	// generator. It is a value object; persisting it is the caller's call.
	ShoppingListItem struct {
		Name           string  `json:"name"`
		EstimatedPrice float64 `json:"estimated_price"`
		SourceTag      string  `json:"source_tag"` // "manual" or "generated"
	}

	InsightsResponse struct {
		Score    int         `json:"score"`
		Insights []string    `json:"insights"`
		Risks    []RiskEntry `json:"risks"`
	}

	MealPlanRequest struct {
		DietTag string `json:"diet_tag"`
	}

	MealPlanResponse struct {
		Plan string `json:"plan"`
	}

	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
