package ai

import "context"

// TextGenerator is a stateless prompt-in/text-out text generation backend.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ChatWriter produces the bot's conversational copy. Every method returns a
// usable display string: generation failures degrade to fixed fallback text
// and are never propagated to the caller.
type ChatWriter interface {
	WelcomeMessage(ctx context.Context) string
	CityResponse(ctx context.Context, city string) string
	CategoryResponse(ctx context.Context, city, category string) string
	EventResponse(ctx context.Context, eventName string) string
	UserInfoPrompt(ctx context.Context, eventName string) string
	BookingConfirmation(ctx context.Context, eventName, userName string) string
	FallbackReply(ctx context.Context) string
}
