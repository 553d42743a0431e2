package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type tokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the caller's identity in the request context.
func Authenticate(verifier tokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.Set("error", "missing bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "authentication required"},
			)
			return
		}

		id, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "invalid token"},
			)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "authentication required"},
			)
			return
		}
		if id.Role != role {
			c.Set("error", "role "+string(id.Role)+" is not allowed")
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"success": false, "message": "forbidden"},
			)
			return
		}
		c.Next()
	}
}

// Identity returns the caller set by Authenticate.
func Identity(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
