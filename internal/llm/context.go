package llm

import "context"

type contextKey struct{}

// WithPurpose labels the request for the audit log, e.g. "chat".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
