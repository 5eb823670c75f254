package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
)

const ContextActor = "actor"

// AuthMiddleware turns the bearer token into a session.Actor. Claims: sub,
// email, role, branchId, branchName, pgId.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "expected a bearer token")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "invalid token claims")
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || role == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "token must carry sub and role")
			return
		}

		actor := session.Actor{
			UserID: sub,
			Role:   session.Role(role),
		}
		actor.Email, _ = claims["email"].(string)
		actor.BranchID, _ = claims["branchId"].(string)
		actor.BranchName, _ = claims["branchName"].(string)
		actor.PGID, _ = claims["pgId"].(string)

		SetActor(c, actor)

		c.Next()
	}
}

func SetActor(c *gin.Context, actor session.Actor) {
	c.Set(ContextActor, actor)
}

// ActorFrom returns the authenticated actor, if any.
func ActorFrom(c *gin.Context) (session.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return session.Actor{}, false
	}
	actor, ok := v.(session.Actor)
	if !ok || actor.IsZero() {
		return session.Actor{}, false
	}
	return actor, true
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			httperr.Unauthorized(c, "missing_session", "authentication required")
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "access_denied", "role "+string(actor.Role)+" is not allowed here")
	}
}
