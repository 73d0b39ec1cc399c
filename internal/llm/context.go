package llm

import "context"

type contextKey string

const metaKey contextKey = "llm_meta"

// CallMeta labels a provider call for event logging.
type CallMeta struct {
	Purpose      string
	Topic        string
	ExerciseType string
}

// WithMeta attaches call metadata to the context for event logging.
func WithMeta(ctx context.Context, meta CallMeta) context.Context {
	return context.WithValue(ctx, metaKey, meta)
}

// MetaFrom extracts call metadata from the context.
func MetaFrom(ctx context.Context) CallMeta {
	if v, ok := ctx.Value(metaKey).(CallMeta); ok {
		return v
	}
	return CallMeta{Purpose: "unknown"}
}
