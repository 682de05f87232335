package catalog

import "context"

type attemptIDKey struct{}

// WithAttemptID tags ctx with the id of a fetch attempt so the transport can
// forward it upstream and logs on both sides can be correlated.
func WithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptIDKey{}, id)
}

// AttemptID returns the fetch attempt id stored in ctx, or "".
func AttemptID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(attemptIDKey{}).(string)
	return id
}
