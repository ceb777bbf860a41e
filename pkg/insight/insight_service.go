package insight

import (
	"context"
	"time"

	"nourish-backend/domain"
	"nourish-backend/pkg/inventory"
	"nourish-backend/pkg/user"

	"github.com/rs/zerolog"
)

type (
	InsightService interface {
		GetImpactInsights(ctx context.Context, userID string) (domain.InsightsResponse, error)
		GetExpirationRisks(ctx context.Context, userID string) ([]domain.RiskEntry, error)
		GenerateMealPlan(ctx context.Context, req domain.MealPlanRequest, userID string) (domain.MealPlanResponse, error)
		Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error)
	}

	insightService struct {
		inventoryRepository inventory.InventoryRepository
		userRepository      user.UserRepository
		planner             *Planner
		responder           *Responder
		log                 zerolog.Logger
	}
)

func NewInsightService(
	inventoryRepository inventory.InventoryRepository,
	userRepository user.UserRepository,
	planner *Planner,
	responder *Responder,
	log zerolog.Logger,
) InsightService {
	return &insightService{
		inventoryRepository: inventoryRepository,
		userRepository:      userRepository,
		planner:             planner,
		responder:           responder,
		log:                 log,
	}
}

func (s *insightService) GetImpactInsights(ctx context.Context, userID string) (domain.InsightsResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.InsightsResponse{}, err
	}
	logs, err := s.inventoryRepository.GetLogs(ctx, userID)
	if err != nil {
		return domain.InsightsResponse{}, err
	}

	now := time.Now()
	result := AnalyzeImpact(items, logs, now)
	risks := PredictRisks(items, now)

	// The engine only computes the score; storing it on the user row
	// happens here.
	if err := s.userRepository.UpdateImpactScore(ctx, userID, result.Score); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to persist impact score")
	}

	return domain.InsightsResponse{
		Score:    result.Score,
		Insights: result.Insights,
		Risks:    risks,
	}, nil
}

func (s *insightService) GetExpirationRisks(ctx context.Context, userID string) ([]domain.RiskEntry, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return PredictRisks(items, time.Now()), nil
}

func (s *insightService) GenerateMealPlan(ctx context.Context, req domain.MealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	dietTag := req.DietTag
	if dietTag == "" {
		dietTag = s.dietaryPref(ctx, userID)
	}

	return domain.MealPlanResponse{
		Plan: s.planner.Generate(ctx, items, dietTag),
	}, nil
}

func (s *insightService) Chat(ctx context.Context, req domain.ChatRequest, userID string) (domain.ChatResponse, error) {
	if req.Message == "" {
		return domain.ChatResponse{}, domain.ErrEmptyMessage
	}

	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	itemNames := make([]string, 0, len(items))
	for _, item := range items {
		itemNames = append(itemNames, item.Name)
	}

	return domain.ChatResponse{
		Reply: s.responder.Respond(ctx, req.Message, itemNames, s.dietaryPref(ctx, userID)),
	}, nil
}

func (s *insightService) dietaryPref(ctx context.Context, userID string) string {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return ""
	}
	return u.DietaryPref
}
