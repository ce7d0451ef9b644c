package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestChatWriter_UsesGeneratedCopy(t *testing.T) {
	w := NewDefaultChatWriter(stubGenerator{text: "Namaste! Which city shall we explore?"})

	got := w.WelcomeMessage(context.Background())

	assert.Equal(t, "Namaste! Which city shall we explore?", got)
}

func TestChatWriter_FallsBackWhenGeneratorNil(t *testing.T) {
	w := NewDefaultChatWriter(nil)
	ctx := context.Background()

	assert.Equal(t, fallbackWelcome, w.WelcomeMessage(ctx))
	assert.Contains(t, w.CityResponse(ctx, "Mumbai"), "Mumbai")
	assert.Contains(t, w.UserInfoPrompt(ctx, "Music 1 in Mumbai"), "Music 1 in Mumbai")
	assert.Equal(t, fallbackGeneric, w.FallbackReply(ctx))
}

func TestChatWriter_FallsBackOnError(t *testing.T) {
	w := NewDefaultChatWriter(stubGenerator{err: errors.New("quota exceeded")})
	ctx := context.Background()

	got := w.BookingConfirmation(ctx, "Music 1 in Mumbai", "Asha")

	assert.Contains(t, got, "Asha")
	assert.Contains(t, got, "Music 1 in Mumbai")
}

func TestChatWriter_FallsBackOnEmptyText(t *testing.T) {
	w := NewDefaultChatWriter(stubGenerator{text: ""})

	assert.Equal(t, fallbackWelcome, w.WelcomeMessage(context.Background()))
}
