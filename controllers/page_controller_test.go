package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_ReportsUTC(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pc := NewPageController("Futura")
	pc.now = func() time.Time {
		return time.Date(2024, 3, 1, 14, 30, 0, 0, time.FixedZone("CET", 3600))
	}

	r := gin.New()
	r.GET("/health-check", pc.HealthCheck)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2024-03-01T13:30:00Z"}`, w.Body.String())
}
