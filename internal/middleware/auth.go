package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// Auth validates a Bearer access token issued by the auth service and puts
// the caller's identity into the request context. Tokens are HS256 with the
// shared secret; claims carry the user id (sub), email, roles and an active
// flag.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid claims"})
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid claims"})
			return
		}
		if !identity.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "account disabled"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by Auth.
func IdentityFromContext(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}

func identityFromClaims(claims jwt.MapClaims) (domain.Identity, bool) {
	id, ok := subjectID(claims["sub"])
	if !ok {
		return domain.Identity{}, false
	}

	identity := domain.Identity{ID: id, Active: true}

	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if active, ok := claims["active"].(bool); ok {
		identity.Active = active
	}

	switch v := claims["roles"].(type) {
	case []interface{}:
		for _, r := range v {
			if role, ok := r.(string); ok {
				identity.Roles = append(identity.Roles, role)
			}
		}
	case string:
		identity.Roles = []string{v}
	}
	if role, ok := claims["role"].(string); ok {
		identity.Roles = append(identity.Roles, role)
	}

	return identity, true
}

// subjectID accepts both numeric and string subjects; the auth service uses
// integer user ids.
func subjectID(v interface{}) (int64, bool) {
	switch sub := v.(type) {
	case float64:
		return int64(sub), true
	case string:
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}
