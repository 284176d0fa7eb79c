package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/ecommerce/internal/adapters/http/controllers"
)

func serveHealth(t *testing.T, checkers []controllers.HealthChecker) (int, controllers.HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/health", controllers.NewHealthController(checkers).Health)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body controllers.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return w.Code, body
}

func TestHealthController_Health(t *testing.T) {
	ok := func(context.Context) error { return nil }

	t.Run("all checks pass", func(t *testing.T) {
		code, body := serveHealth(t, []controllers.HealthChecker{
			{Name: "database", Check: ok},
			{Name: "redis", Check: ok},
		})

		if code != http.StatusOK || body.Status != "ok" {
			t.Fatalf("expected 200 ok, got %d %s", code, body.Status)
		}
		if body.Services["database"] != "ok" || body.Services["redis"] != "ok" {
			t.Fatalf("unexpected services %v", body.Services)
		}
	})

	t.Run("failing check degrades", func(t *testing.T) {
		code, body := serveHealth(t, []controllers.HealthChecker{
			{Name: "database", Check: ok},
			{Name: "rabbitmq", Check: func(context.Context) error { return errors.New("connection is closed") }},
		})

		if code != http.StatusServiceUnavailable || body.Status != "degraded" {
			t.Fatalf("expected 503 degraded, got %d %s", code, body.Status)
		}
		if body.Services["rabbitmq"] != "connection is closed" {
			t.Fatalf("expected checker error, got %q", body.Services["rabbitmq"])
		}
	})
}

func TestHealthController_Index(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", controllers.NewHealthController(nil).Index)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK || w.Body.String() != "Ecommerce" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
}
