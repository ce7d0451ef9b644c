package ai

import (
	"context"
	"fmt"

	"infibot/utils"

	"go.uber.org/zap"
)

// Fallback copy used when the generation backend is unavailable.
const (
	fallbackWelcome  = "Welcome to InfiBot! I'm here to help you find and book events. Please select a city where you'd like to explore events."
	fallbackCity     = "Great choice! %s has many exciting events. What type of event are you interested in?"
	fallbackCategory = "Perfect! Let's check out the %s events available in %s. Here are the options you can choose from."
	fallbackEvent    = "Excellent choice! Here are the details for this event. Click \"Book Now\" if you'd like to get tickets."
	fallbackUserInfo = "To complete your booking for %s, please fill in your name, age, gender, phone number, and email address."
	fallbackConfirm  = "Congratulations %s! Your booking for %s is confirmed. Your e-ticket has been generated, and the QR code will be scanned at the event entrance."
	fallbackGeneric  = "I'm here to help you book event tickets. Let me know which city you're interested in exploring!"
)

// DefaultChatWriter renders conversational copy through a TextGenerator,
// degrading to canned strings when generation fails.
type DefaultChatWriter struct {
	Generator TextGenerator
}

func NewDefaultChatWriter(gen TextGenerator) *DefaultChatWriter {
	return &DefaultChatWriter{Generator: gen}
}

func (w *DefaultChatWriter) generate(ctx context.Context, prompt, fallback string) string {
	if w.Generator == nil {
		return fallback
	}
	text, err := w.Generator.GenerateContent(ctx, prompt)
	if err != nil || text == "" {
		utils.GetLogger().Warn("text generation failed, using fallback copy", zap.Error(err))
		return fallback
	}
	return text
}

func (w *DefaultChatWriter) WelcomeMessage(ctx context.Context) string {
	prompt := "You are an AI assistant for a ticket booking application. " +
		"Provide a brief, friendly welcome message (about 2 sentences) and ask the user to name an Indian city " +
		"where they want to see events. Make it conversational and engaging. Don't list any cities."
	return w.generate(ctx, prompt, fallbackWelcome)
}

func (w *DefaultChatWriter) CityResponse(ctx context.Context, city string) string {
	prompt := fmt.Sprintf("The user has selected %s as their city of interest for events. "+
		"Respond with a short acknowledgment of their city selection and ask what category of events "+
		"they're interested in. Keep it conversational and brief.", city)
	return w.generate(ctx, prompt, fmt.Sprintf(fallbackCity, city))
}

func (w *DefaultChatWriter) CategoryResponse(ctx context.Context, city, category string) string {
	prompt := fmt.Sprintf("The user has selected %s events in %s. "+
		"Provide a brief, enthusiastic response acknowledging their selection and mention that "+
		"you're showing them a list of %s events in %s. Keep it conversational and brief.",
		category, city, category, city)
	return w.generate(ctx, prompt, fmt.Sprintf(fallbackCategory, category, city))
}

func (w *DefaultChatWriter) EventResponse(ctx context.Context, eventName string) string {
	prompt := fmt.Sprintf("The user has selected the event: %q. "+
		"Write a brief, enthusiastic response (2-3 sentences) acknowledging their selection and "+
		"stating that you're showing them details about this event.", eventName)
	return w.generate(ctx, prompt, fallbackEvent)
}

func (w *DefaultChatWriter) UserInfoPrompt(ctx context.Context, eventName string) string {
	prompt := fmt.Sprintf("The user wants to book tickets for the event: %q. "+
		"Write a brief message asking for their information to complete the booking. "+
		"Request their name, age, gender, phone number, and email address. "+
		"Make it friendly, professional, and concise.", eventName)
	return w.generate(ctx, prompt, fmt.Sprintf(fallbackUserInfo, eventName))
}

func (w *DefaultChatWriter) BookingConfirmation(ctx context.Context, eventName, userName string) string {
	prompt := fmt.Sprintf("Generate a brief, enthusiastic confirmation message for %s who has successfully "+
		"booked tickets for %s. Mention that their e-ticket has been generated as a PDF, that they can "+
		"download or share it, and that the QR code on the ticket will be scanned at entry.",
		userName, eventName)
	return w.generate(ctx, prompt, fmt.Sprintf(fallbackConfirm, userName, eventName))
}

func (w *DefaultChatWriter) FallbackReply(ctx context.Context) string {
	return w.generate(ctx, "You are an AI assistant for a ticket booking application. "+
		"The user sent a message outside the booking flow. Gently steer them back to booking event tickets.",
		fallbackGeneric)
}
