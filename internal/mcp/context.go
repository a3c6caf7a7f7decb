package mcp

import "context"

// accessTokenKey is the context key for a per-request upstream access token.
type accessTokenKey struct{}

// WithAccessToken returns a new context carrying a caller-supplied OAuth
// access token. The proxy forwards it to the upstream API in place of the
// configured token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext extracts the per-request access token, if present.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}
