package logging

import "context"

type contextKey string

const (
	deckIDKey  contextKey = "deck_id"
	commandKey contextKey = "command"
)

// WithDeckID adds the identifier of the deck being presented to the context.
func WithDeckID(ctx context.Context, deckID string) context.Context {
	return context.WithValue(ctx, deckIDKey, deckID)
}

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetDeckID retrieves the deck ID from the context.
// Returns empty string if not present.
func GetDeckID(ctx context.Context) string {
	if id, ok := ctx.Value(deckIDKey).(string); ok {
		return id
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
