package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

const authCtxKey = contextKey("authContext")

// AuthContext is the explicit outcome of the auth middleware, attached to
// every request's context. Either the request carried a valid access token
// (Authenticated true, identity fields set) or it is anonymous. Handlers
// that require a signed-in caller must check Authenticated themselves; the
// middleware does not reject anonymous requests.
type AuthContext struct {
	Authenticated bool
	UserID        int64
	Email         string
	// TokenID and ExpiresAt identify the presented access token so logout
	// can revoke it for exactly its remaining lifetime.
	TokenID   string
	ExpiresAt time.Time
}

// Anonymous is the AuthContext for requests without credentials.
var Anonymous = AuthContext{}

// GetAuthFromContext retrieves the AuthContext for the current request.
// A request that never passed through the auth middleware is anonymous.
func GetAuthFromContext(c *gin.Context) AuthContext {
	return GetAuthFromCtx(c.Request.Context())
}

// GetAuthFromCtx retrieves the AuthContext from a standard context.
func GetAuthFromCtx(ctx context.Context) AuthContext {
	auth, ok := ctx.Value(authCtxKey).(AuthContext)
	if !ok {
		return Anonymous
	}
	return auth
}

func withAuthContext(ctx context.Context, auth AuthContext) context.Context {
	return context.WithValue(ctx, authCtxKey, auth)
}
