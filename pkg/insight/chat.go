package insight

import (
	"context"
	"fmt"
	"strings"

	"nourish-backend/pkg/gateway"

	"github.com/rs/zerolog"
)

// Responder answers free-text pantry questions. The provider is tried
// first; on any failure the reply comes from keyword matching where only
// the first matching branch fires.
type Responder struct {
	provider gateway.Provider
	log      zerolog.Logger
}

func NewResponder(provider gateway.Provider, log zerolog.Logger) *Responder {
	return &Responder{provider: provider, log: log}
}

func (r *Responder) Respond(ctx context.Context, message string, itemNames []string, dietTag string) string {
	inventorySummary := "an empty pantry"
	if len(itemNames) > 0 {
		inventorySummary = strings.Join(itemNames, ", ")
	}

	if r.provider != nil {
		systemContext := fmt.Sprintf(
			"You are NourishBot, an expert in zero-waste cooking. The user follows a %s diet and has: %s. "+
				"Keep replies short. Never tell the user they have nothing; suggest what to buy instead. "+
				"Estimate costs when asked. General cooking questions are fine.",
			dietTag, inventorySummary,
		)
		reply, err := r.provider.Generate(ctx, systemContext, message)
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply
		}
		if err != nil {
			r.log.Warn().Err(err).Msg("assistant provider call failed, using keyword reply")
		}
	}

	return keywordReply(message, itemNames, dietTag, inventorySummary)
}

// keywordReply is the deterministic branch logic: greeting, then
// cook/recipe, then buy/shop, then the catch-all. First match wins.
func keywordReply(message string, itemNames []string, dietTag, inventorySummary string) string {
	msg := strings.ToLower(message)

	switch {
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hey"):
		return "Hello! I'm NourishBot. Ask me how to use up your leftovers."

	case strings.Contains(msg, "recipe") || strings.Contains(msg, "cook"):
		if len(itemNames) == 0 {
			return "Your pantry is empty. Add a few items and I'll suggest a recipe right away."
		}
		return fmt.Sprintf("Try a %s stir-fry! Use %s with garlic and soy sauce.", dietTag, itemNames[0])

	case strings.Contains(msg, "buy") || strings.Contains(msg, "shop"):
		return "Head to the shopping list tab and I'll build one that fits your budget."

	default:
		return fmt.Sprintf("I can help you use up %s. Ask me for a recipe!", inventorySummary)
	}
}
