package middleware

// contextKey is a private type for context values set by this package,
// so they can't collide with keys from other packages.
type contextKey string
