// Package account resolves which account the current call acts on behalf of.
//
// Every aggregate key is namespaced by the resolved account id. The id travels
// in the context so that front-ends (one Discord user per interaction, one
// local user for a single-user install) can scope calls without threading an
// extra parameter through every service method.
package account

import (
	"context"
	"strings"
)

// Local is the namespace used when no account can be resolved
const Local = "local"

type contextKey struct{}

// Resolver returns the identifier of the account currently considered logged in
type Resolver interface {
	CurrentAccount(ctx context.Context) (string, bool)
}

// WithID returns a derived context carrying the account id
func WithID(ctx context.Context, id string) context.Context {
	id = Normalize(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts an account id previously attached with WithID
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Normalize trims and lower-cases an account identifier
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ContextResolver resolves the account from the request context
type ContextResolver struct{}

// CurrentAccount implements Resolver
func (ContextResolver) CurrentAccount(ctx context.Context) (string, bool) {
	return FromContext(ctx)
}

// StaticResolver always resolves to the same account.
// An empty ID behaves as "no account".
type StaticResolver struct {
	ID string
}

// CurrentAccount implements Resolver
func (r StaticResolver) CurrentAccount(_ context.Context) (string, bool) {
	id := Normalize(r.ID)
	return id, id != ""
}

// OrLocal resolves the account, falling back to the Local namespace
func OrLocal(ctx context.Context, r Resolver) string {
	if r != nil {
		if id, ok := r.CurrentAccount(ctx); ok {
			return id
		}
	}
	return Local
}
