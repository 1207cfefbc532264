package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/auth"
	"github.com/vere-app/vere/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter(jwtSvc *auth.JWTService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtSvc), func(c *gin.Context) {
		id, _ := GetOwnerIDFromGinContext(c)
		c.JSON(http.StatusOK, gin.H{"owner_id": id.String()})
	})
	r.GET("/public", OptionalAuthMiddleware(jwtSvc), func(c *gin.Context) {
		id, username := GetViewerFromGinContext(c)
		c.JSON(http.StatusOK, gin.H{"viewer_id": id.String(), "username": username})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	r := newAuthTestRouter(auth.NewJWTService("test-secret", time.Hour))

	cases := map[string]string{
		"missing":      "",
		"no bearer":    "just-a-token",
		"bad token":    "Bearer not.a.jwt",
		"wrong secret": bearerToken(t, auth.NewJWTService("other-secret", time.Hour)),
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	r := newAuthTestRouter(jwtSvc)

	userID := uuid.New()
	token, err := jwtSvc.GenerateToken(userID, "ada")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	r := newAuthTestRouter(jwtSvc)

	// No token: anonymous viewer, request still succeeds.
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), uuid.Nil.String())

	// Garbage token: still anonymous, still 200.
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), uuid.Nil.String())

	// Valid token: viewer is identified.
	userID := uuid.New()
	token, err := jwtSvc.GenerateToken(userID, "ada")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "ada")
}

func TestErrorMiddlewareMapsAppErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware(logger.NewNop()))
	r.GET("/err/:kind", func(c *gin.Context) {
		switch c.Param("kind") {
		case "notfound":
			c.Error(apperror.NewNotFound("profile", "abc"))
		case "permission":
			c.Error(apperror.NewPermissionDenied("nope"))
		case "invalid":
			c.Error(apperror.NewInvalidInput("bad payload", nil))
		case "unauthorized":
			c.Error(apperror.NewUnauthorized("who are you", nil))
		case "internal":
			c.Error(apperror.NewInternal("boom", nil))
		}
	})

	cases := map[string]int{
		"notfound":     http.StatusNotFound,
		"permission":   http.StatusForbidden,
		"invalid":      http.StatusBadRequest,
		"unauthorized": http.StatusUnauthorized,
		"internal":     http.StatusInternalServerError,
	}

	for kind, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/err/"+kind, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, kind)
		assert.Contains(t, w.Body.String(), "error", kind)
	}
}

func TestErrorMiddlewareLeavesCleanRequestsAlone(t *testing.T) {
	r := gin.New()
	r.Use(ErrorMiddleware(logger.NewNop()))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "fine"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fine")
}

func bearerToken(t *testing.T, svc *auth.JWTService) string {
	t.Helper()
	token, err := svc.GenerateToken(uuid.New(), "intruder")
	require.NoError(t, err)
	return "Bearer " + token
}
