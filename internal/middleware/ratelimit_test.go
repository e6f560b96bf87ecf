package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Strict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter()
	defer rl.Close()

	router := gin.New()
	router.POST("/dashboard/login", rl.Strict(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/dashboard/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < burstStrict; i++ {
		assert.Equal(t, http.StatusOK, hit(), "request %d within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit())
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter()
	defer rl.Close()

	router := gin.New()
	router.POST("/dashboard/login", rl.Strict(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	hit := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/dashboard/login", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < burstStrict; i++ {
		hit("10.0.0.1:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1234"))
	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:1234"))
}
