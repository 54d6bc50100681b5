package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bookchat/seeker/internal/config"
	"github.com/bookchat/seeker/internal/handler"
	appointmentModel "github.com/bookchat/seeker/internal/model/appointment"
	"github.com/bookchat/seeker/internal/model/user"
)

func setupApp(t *testing.T, script string) (*app, *bytes.Buffer) {
	t.Helper()

	upcoming, past := appointmentModel.Seed()
	router := handler.NewRouter(
		user.NewMemoryStore(user.Seed()),
		appointmentModel.NewMemoryStore(upcoming, past),
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	cfg := &config.Config{API: config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}}
	out := &bytes.Buffer{}
	return newApp(cfg, strings.NewReader(script), out), out
}

func TestRescheduleFlowEndToEnd(t *testing.T) {
	script := strings.Join([]string{
		"login",
		"john.doe@example.com",
		"password123",
		"appointments",
		"reschedule 2",
		"quit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run err: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Login successful!",
		"Dr. Mike Chen",
		"2024-01-18",
		"2:30 PM",
		"Opening chat to reschedule appointment",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}

	// The pre-fill landed in the visible draft of the selected conversation.
	draft := app.controller.Draft()
	if !strings.Contains(draft, "Dr. Mike Chen") || !strings.Contains(draft, "2:30 PM") {
		t.Fatalf("unexpected draft: %q", draft)
	}
	if selected, ok := app.controller.Selected(); !ok || selected.ProviderName != "Dr. Mike Chen" {
		t.Fatalf("unexpected selection: %+v ok=%v", selected, ok)
	}
}

func TestLoginFailureStaysOnAuthView(t *testing.T) {
	script := strings.Join([]string{
		"login",
		"john.doe@example.com",
		"wrong-password",
		"quit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run err: %v", err)
	}

	if !strings.Contains(out.String(), "Login failed") {
		t.Fatalf("expected a login failure notice:\n%s", out.String())
	}
	if app.gate.Authenticated() {
		t.Fatal("gate must stay closed")
	}
}

func TestSendAndLogoutFlow(t *testing.T) {
	script := strings.Join([]string{
		"login",
		"john.doe@example.com",
		"password123",
		"open 1",
		"Thanks, see you tomorrow",
		"logout",
		"quit",
	}, "\n") + "\n"

	app, out := setupApp(t, script)
	if err := app.run(context.Background()); err != nil {
		t.Fatalf("run err: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "you: Thanks, see you tomorrow") {
		t.Fatalf("sent message not echoed:\n%s", output)
	}
	if !strings.Contains(output, "Logged out successfully") {
		t.Fatalf("logout notice missing:\n%s", output)
	}
	if len(app.controller.History()) != 0 {
		t.Fatal("no transcript may survive logout")
	}
}
