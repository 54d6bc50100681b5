package auth_test

import (
	"context"
	"errors"
	"testing"

	auth "github.com/bookchat/seeker/internal/service/auth"

	"github.com/bookchat/seeker/internal/model/user"
)

type fakeAuthenticator struct {
	loginCalls    int
	registerCalls int
	token         string
	err           error
}

func (f *fakeAuthenticator) Login(_ context.Context, email, password string) (string, error) {
	f.loginCalls++
	return f.token, f.err
}

func (f *fakeAuthenticator) Register(_ context.Context, _ user.Profile) error {
	f.registerCalls++
	return f.err
}

func TestLoginSuccess(t *testing.T) {
	fake := &fakeAuthenticator{token: "tok-123"}
	gate := auth.NewGate(fake)

	session, err := gate.Login(context.Background(), "john.doe@example.com", "password123")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !session.Authenticated || session.Token != "tok-123" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if !gate.Authenticated() {
		t.Fatal("gate should report authenticated")
	}
}

func TestLoginEmptyPasswordSkipsAuthenticator(t *testing.T) {
	fake := &fakeAuthenticator{token: "tok-123"}
	gate := auth.NewGate(fake)

	_, err := gate.Login(context.Background(), "john.doe@example.com", "")
	if !errors.Is(err, auth.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if fake.loginCalls != 0 {
		t.Fatalf("authenticator called %d times, want 0", fake.loginCalls)
	}
	if gate.Authenticated() {
		t.Fatal("gate must stay closed after validation failure")
	}
}

func TestLoginRejectedLeavesGateClosed(t *testing.T) {
	fake := &fakeAuthenticator{err: errors.New("bad password")}
	gate := auth.NewGate(fake)

	_, err := gate.Login(context.Background(), "john.doe@example.com", "wrong")
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if gate.Authenticated() {
		t.Fatal("gate must stay closed after rejection")
	}
	if _, ok := gate.Token(); ok {
		t.Fatal("no token expected after rejection")
	}
}

func TestLoginEmptyTokenTreatedAsRejection(t *testing.T) {
	fake := &fakeAuthenticator{token: ""}
	gate := auth.NewGate(fake)

	_, err := gate.Login(context.Background(), "john.doe@example.com", "password123")
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	fake := &fakeAuthenticator{}
	gate := auth.NewGate(fake)

	profile := user.Profile{
		Name:     "Jane Roe",
		Email:    "jane.roe@example.com",
		Phone:    "+1-555-0456",
		Password: "secret",
		Role:     "seeker",
	}
	if err := gate.Register(context.Background(), profile); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if fake.registerCalls != 1 {
		t.Fatalf("registrar called %d times, want 1", fake.registerCalls)
	}
	if gate.Authenticated() {
		t.Fatal("registration must not authenticate")
	}
}

func TestRegisterMissingFieldSkipsRegistrar(t *testing.T) {
	fake := &fakeAuthenticator{}
	gate := auth.NewGate(fake)

	profile := user.Profile{Name: "Jane Roe", Email: "jane.roe@example.com", Role: "seeker"}
	if err := gate.Register(context.Background(), profile); !errors.Is(err, auth.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if fake.registerCalls != 0 {
		t.Fatalf("registrar called %d times, want 0", fake.registerCalls)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	fake := &fakeAuthenticator{token: "tok-123"}
	gate := auth.NewGate(fake)

	if _, err := gate.Login(context.Background(), "john.doe@example.com", "password123"); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	gate.Logout()

	if gate.Authenticated() {
		t.Fatal("gate should be closed after logout")
	}
	if session := gate.Current(); session.Token != "" {
		t.Fatalf("token should be cleared, got %q", session.Token)
	}
}
