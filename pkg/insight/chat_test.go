package insight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponderProviderReplyWins(t *testing.T) {
	provider := &stubProvider{reply: "Use the spinach tonight."}
	responder := NewResponder(provider, testLogger())

	reply := responder.Respond(context.Background(), "what should I cook?", []string{"Spinach (Fresh)"}, "Vegan")
	assert.Equal(t, "Use the spinach tonight.", reply)
}

func TestResponderGreetingFallback(t *testing.T) {
	responder := NewResponder(failingProvider(), testLogger())

	reply := responder.Respond(context.Background(), "Hello there", nil, "")
	assert.Equal(t, "Hello! I'm NourishBot. Ask me how to use up your leftovers.", reply)
}

func TestResponderRecipeWithEmptyPantry(t *testing.T) {
	responder := NewResponder(failingProvider(), testLogger())

	reply := responder.Respond(context.Background(), "any recipe ideas?", nil, "Vegan")
	assert.Equal(t, "Your pantry is empty. Add a few items and I'll suggest a recipe right away.", reply)
}

func TestResponderRecipeWithItems(t *testing.T) {
	responder := NewResponder(failingProvider(), testLogger())

	reply := responder.Respond(context.Background(), "how do I cook this?", []string{"Tofu", "Rice (White)"}, "Vegan")
	assert.Equal(t, "Try a Vegan stir-fry! Use Tofu with garlic and soy sauce.", reply)
}

func TestResponderGreetingBeatsRecipe(t *testing.T) {
	responder := NewResponder(failingProvider(), testLogger())

	// Both keywords present; the greeting branch is checked first.
	reply := responder.Respond(context.Background(), "hello, got a recipe?", []string{"Tofu"}, "Vegan")
	assert.Equal(t, "Hello! I'm NourishBot. Ask me how to use up your leftovers.", reply)
}

func TestResponderShoppingFallback(t *testing.T) {
	responder := NewResponder(failingProvider(), testLogger())

	reply := responder.Respond(context.Background(), "what should I buy?", nil, "")
	assert.Equal(t, "Head to the shopping list tab and I'll build one that fits your budget.", reply)
}

func TestResponderDefaultFallback(t *testing.T) {
	responder := NewResponder(failingProvider(), testLogger())

	reply := responder.Respond(context.Background(), "tell me something", []string{"Oats", "Banana"}, "")
	assert.Equal(t, "I can help you use up Oats, Banana. Ask me for a recipe!", reply)
}
