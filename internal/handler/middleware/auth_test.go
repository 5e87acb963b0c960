//go:build unit

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"company-registry/internal/domain/auth"
	"company-registry/internal/handler/middleware"
	"company-registry/internal/pkg/cookie"
	"company-registry/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenValidator struct {
	validateFn func(ctx context.Context, tokenString string) (auth.Identity, error)
}

func (s *stubTokenValidator) ValidateToken(ctx context.Context, tokenString string) (auth.Identity, error) {
	return s.validateFn(ctx, tokenString)
}

func newProtectedRouter(validator usecase.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.NewAuthMiddleware(validator)

	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		ident, ok := middleware.GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": ident.UserID})
	})

	return router
}

func TestRequireAuth(t *testing.T) {
	acceptAll := &stubTokenValidator{
		validateFn: func(_ context.Context, _ string) (auth.Identity, error) {
			return auth.Identity{UserID: 42}, nil
		},
	}
	rejectAll := &stubTokenValidator{
		validateFn: func(_ context.Context, _ string) (auth.Identity, error) {
			return auth.Identity{}, usecase.ErrTokenValidation
		},
	}

	t.Run("success: bearer header sets the identity", func(t *testing.T) {
		router := newProtectedRouter(acceptAll)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]int64
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(42), body["user_id"])
	})

	t.Run("success: cookie works without a header", func(t *testing.T) {
		router := newProtectedRouter(acceptAll)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "some-token"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("error: every failure mode yields the same 401 body", func(t *testing.T) {
		cases := []struct {
			name    string
			prepare func(req *http.Request)
			reject  bool
		}{
			{name: "no credentials at all", prepare: func(_ *http.Request) {}},
			{name: "malformed authorization header", prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Token abc")
			}},
			{name: "rejected token", prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer bad-token")
			}, reject: true},
		}

		var bodies []string
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				validator := acceptAll
				if tc.reject {
					validator = rejectAll
				}
				router := newProtectedRouter(validator)

				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				tc.prepare(req)
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)

				require.Equal(t, http.StatusUnauthorized, rec.Code)
				bodies = append(bodies, rec.Body.String())
			})
		}

		for _, body := range bodies[1:] {
			assert.Equal(t, bodies[0], body)
		}
	})
}

func TestGetIdentity(t *testing.T) {
	t.Run("識別子が未設定なら false", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := middleware.GetIdentity(c)
		assert.False(t, ok)
	})
}
