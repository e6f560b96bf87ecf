package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFrom returns the authenticated admin from the request
// context, if any.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*Identity)
	return ident, ok
}

// RequireAdmin gates the dashboard routes. Anonymous or expired
// sessions are redirected to the login page instead of getting an
// error.
func RequireAdmin(sessions *SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/dashboard/login")
			c.Abort()
			return
		}

		ident, err := sessions.ParseToken(token)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/dashboard/login")
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, ident)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
