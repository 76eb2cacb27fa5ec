package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderSessionID identifies a browsing session across requests. The last
	// quote shown is remembered per session.
	HeaderSessionID = "X-Session-ID"

	// ContextKeySessionID is the gin context key for the session ID.
	ContextKeySessionID = "session_id"
)

// Session returns middleware that reads the session ID header, issuing a new
// one when absent. Clients keep the echoed header to continue the session.
func Session() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderSessionID,
		contextKey: ContextKeySessionID,
		enrichers: []func(context.Context, string) context.Context{
			ContextWithSessionID,
		},
	})
}

// GetSessionID returns the session ID, or "" if the middleware did not run.
func GetSessionID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeySessionID)
}
