package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"leadgate/config"
)

func TestSubmissionRateLimiterOverLimit(t *testing.T) {
	config.AppConfig = config.Config{RateLimitSubmissions: 2}

	app := fiber.New()
	app.Post("/leads", SubmissionRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	// app.Test requests share a client IP, so they count against one key.
	wantStatuses := []int{fiber.StatusCreated, fiber.StatusCreated, fiber.StatusTooManyRequests}
	var last *http.Response
	for i, want := range wantStatuses {
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request %d: app.Test: %v", i+1, err)
		}
		if resp.StatusCode != want {
			t.Fatalf("request %d: status = %d, want %d", i+1, resp.StatusCode, want)
		}
		last = resp
	}

	raw, err := io.ReadAll(last.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal body %s: %v", raw, err)
	}
	if body.Success {
		t.Error("over-limit response marked success")
	}
	if !strings.Contains(body.Message, "Too many submissions") {
		t.Errorf("message = %q, want throttle guidance", body.Message)
	}
}

func TestSubmissionRateLimiterAllowsWithinLimit(t *testing.T) {
	config.AppConfig = config.Config{RateLimitSubmissions: 5}

	app := fiber.New()
	app.Post("/leads", SubmissionRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/leads", nil), -1)
		if err != nil {
			t.Fatalf("request %d: app.Test: %v", i+1, err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("request %d: status = %d, want 201", i+1, resp.StatusCode)
		}
	}
}
