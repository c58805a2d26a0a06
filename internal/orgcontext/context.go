// Package orgcontext carries the owning organization through request
// contexts. Handlers resolve it once; services read it for every query.
package orgcontext

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// WithOrgID returns a context carrying the organization id.
func WithOrgID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, contextKey{}, orgID)
}

// OrgID extracts the organization id, validating its UUID form.
func OrgID(ctx context.Context) (string, bool) {
	raw, _ := ctx.Value(contextKey{}).(string)
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
