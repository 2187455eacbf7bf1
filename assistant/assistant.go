package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/guddy2005/real-estate-app/ai"
	"github.com/guddy2005/real-estate-app/catalog"
	"github.com/guddy2005/real-estate-app/core"
	"github.com/guddy2005/real-estate-app/match"
)

// EmptyMessageReply is returned for a blank chat message.
const EmptyMessageReply = "Please enter a message."

const cardsHeader = "<strong>Here are some properties that match your criteria:</strong>"

// cardCues are the message fragments that signal the user wants to see
// listings; only then are property cards appended to the reply.
var cardCues = []string{
	"show", "find", "recommend", "suggest", "looking for",
	"villa", "penthouse", "apartment", "duplex", "office",
}

// Assistant orchestrates a chat turn: catalog ranking, prompt assembly,
// reply generation and card rendering.
type Assistant struct {
	scorer    *match.Scorer
	responder ai.Responder
	profiles  catalog.ProfileStore
	logger    *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAssistant creates a new assistant.
func NewAssistant(
	scorer *match.Scorer,
	responder ai.Responder,
	profiles catalog.ProfileStore,
	opts ...Option,
) (*Assistant, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}
	if responder == nil {
		return nil, ErrResponderRequired
	}
	if profiles == nil {
		return nil, ErrProfileStoreRequired
	}

	a := &Assistant{
		scorer:    scorer,
		responder: responder,
		profiles:  profiles,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Chat answers a single user message.
//
// Blank messages short-circuit to EmptyMessageReply. A generation
// failure produces an apologetic reply rather than an error, so the
// conversation surface never breaks; ranking and store failures are
// returned as errors.
func (a *Assistant) Chat(ctx context.Context, message string, user core.UserType) (string, error) {
	if message == "" {
		return EmptyMessageReply, nil
	}
	if err := core.ValidateUserType(user); err != nil {
		return "", err
	}

	matches, err := a.scorer.Score(ctx, message, user)
	if err != nil {
		return "", fmt.Errorf("rank catalog: %w", err)
	}

	var profile *core.UserProfile
	if user == core.UserRegistered {
		profile, err = a.profiles.Profile(ctx, catalog.DemoUserID)
		if err != nil {
			return "", fmt.Errorf("load profile: %w", err)
		}
	}

	prompt := BuildPrompt(message, UserContext(user, profile), PropertiesContext(matches))

	reply, err := a.responder.Generate(ctx, prompt)
	if err != nil {
		a.logger.Error("reply generation failed", "user", user, "err", err)
		return fmt.Sprintf("I apologize, but I encountered an error: %v. Please try again.", err), nil
	}

	if len(matches) > 0 && wantsCards(message) {
		cards, err := RenderCards(matches, user == core.UserRegistered)
		if err != nil {
			return "", err
		}
		if cards != "" {
			reply += "\n\n" + cardsHeader + "\n" + cards
		}
	}

	a.logger.Debug("chat turn complete",
		"user", user, "matches", len(matches), "replyBytes", len(reply))
	return reply, nil
}

// wantsCards reports whether the message asks for listings.
func wantsCards(message string) bool {
	lower := strings.ToLower(message)
	for _, cue := range cardCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
