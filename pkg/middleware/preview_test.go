package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingpro/landing/backend/go-services/internal/tokens"
)

const testSecret = "preview-secret-for-middleware-tests"

func previewRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PreviewAuth(secret, nil))
	r.GET("/c", func(c *gin.Context) {
		sub := ""
		if v, ok := c.Get(ClaimsKey); ok {
			sub, _ = v.(map[string]interface{})["sub"].(string)
		}
		c.JSON(http.StatusOK, gin.H{"preview": IsPreview(c), "sub": sub})
	})
	return r
}

func TestPreviewAuth_PassesPublishedRequests(t *testing.T) {
	r := previewRouter("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/c", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"preview":false,"sub":""}`, w.Body.String())
}

func TestPreviewAuth_ValidToken(t *testing.T) {
	tok, err := tokens.GeneratePreviewToken(testSecret, "editor@example.com", time.Minute)
	require.NoError(t, err)

	r := previewRouter(testSecret)
	req := httptest.NewRequest(http.MethodGet, "/c?preview=true", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"preview":true,"sub":"editor@example.com"}`, w.Body.String())
}

func TestPreviewAuth_Rejections(t *testing.T) {
	valid, err := tokens.GeneratePreviewToken(testSecret, "u", time.Minute)
	require.NoError(t, err)
	expired, err := tokens.GeneratePreviewToken(testSecret, "u", -time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name   string
		secret string
		header string
	}{
		{"preview disabled", "", "Bearer " + valid},
		{"no header", testSecret, ""},
		{"not bearer", testSecret, "Basic dXNlcjpwYXNz"},
		{"expired", testSecret, "Bearer " + expired},
		{"wrong secret", "another-secret-entirely-xxxxxxxx", "Bearer " + valid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := previewRouter(tc.secret)
			req := httptest.NewRequest(http.MethodGet, "/c?preview=true", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestPreviewAuth_RevokedToken(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	rev := tokens.NewRevocations(redis.NewClient(&redis.Options{Addr: m.Addr()}))

	tok, err := tokens.GeneratePreviewToken(testSecret, "editor", time.Minute)
	require.NoError(t, err)

	r := gin.New()
	r.Use(PreviewAuth(testSecret, rev))
	r.GET("/c", func(c *gin.Context) { c.Status(http.StatusOK) })
	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/c?preview=true", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, send())
	_, err = rev.RevokeToken(context.Background(), testSecret, tok)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, send())

	m.Close()
	require.Equal(t, http.StatusServiceUnavailable, send())
}
