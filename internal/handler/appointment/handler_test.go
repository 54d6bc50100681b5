package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	appointmentModel "github.com/bookchat/seeker/internal/model/appointment"
	authHandler "github.com/bookchat/seeker/internal/handler/auth"
)

func setupRouter() (*chi.Mux, string) {
	upcoming, past := appointmentModel.Seed()
	store := appointmentModel.NewMemoryStore(upcoming, past)
	tokens := authHandler.NewTokenStore()
	token := tokens.Issue("john.doe@example.com")

	handler := New(store, tokens)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, token
}

func TestUpcomingWithToken(t *testing.T) {
	r, token := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/appointments/me/upcoming", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var appointments []appointmentModel.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointments); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appointments))
	}
	if appointments[1].ProviderName != "Dr. Mike Chen" {
		t.Fatalf("unexpected provider: %q", appointments[1].ProviderName)
	}
}

func TestPastWithToken(t *testing.T) {
	r, token := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/appointments/me/past", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestUpcomingWithoutToken(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/appointments/me/upcoming", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestUpcomingWithBogusToken(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/appointments/me/upcoming", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
