package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/doctors-portal-api/internal/middleware"
)

func TestRateLimitBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := middleware.NewRateLimiter(0.1, 2)
	t.Cleanup(rl.Close)
	r.POST("/login", middleware.RateLimit(rl), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("requests within burst should pass: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("request over burst should be throttled: %v", codes)
	}
}

func TestRateLimiterCloseIsIdempotent(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 1)
	rl.Close()
	rl.Close()
}
