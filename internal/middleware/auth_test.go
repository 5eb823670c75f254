package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func authRouter(captured *session.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		*captured, _ = ActorFrom(c)
		c.Status(http.StatusOK)
	})
	r.GET("/root", AuthMiddleware(testSecret), RequireRole(session.RoleSuperadmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware_BuildsActor(t *testing.T) {
	var actor session.Actor
	r := authRouter(&actor)

	tok := signToken(t, jwt.MapClaims{
		"sub":        "a1",
		"email":      "amy@pg.test",
		"role":       "admin",
		"branchId":   "b1",
		"branchName": "North",
		"pgId":       "pg1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.Actor{
		UserID:     "a1",
		Email:      "amy@pg.test",
		Role:       session.RoleAdmin,
		BranchID:   "b1",
		BranchName: "North",
		PGID:       "pg1",
	}, actor)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	var actor session.Actor
	r := authRouter(&actor)

	expired := signToken(t, jwt.MapClaims{"sub": "a1", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()})
	noRole := signToken(t, jwt.MapClaims{"sub": "a1"})
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a1", "role": "admin"}).SignedString([]byte("other"))
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":   "",
		"scheme":    "Basic abc",
		"expired":   "Bearer " + expired,
		"no role":   "Bearer " + noRole,
		"signature": "Bearer " + foreign,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	var actor session.Actor
	r := authRouter(&actor)

	for role, want := range map[string]int{"superadmin": http.StatusOK, "admin": http.StatusForbidden} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/root", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "x", "role": role}))
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}
