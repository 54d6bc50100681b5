// Package client implements the booking backend collaborators consumed by
// the chat core: credential verification, registration and the appointment
// feed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bookchat/seeker/internal/config"
	"github.com/bookchat/seeker/internal/model/appointment"
	"github.com/bookchat/seeker/internal/model/user"
)

// TokenSource yields the bearer token for authenticated endpoints.
type TokenSource func() (string, bool)

// Client talks HTTP to the booking backend.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// New returns a Client for the configured backend. token supplies the bearer
// token for the appointment endpoints and is usually the session gate.
func New(cfg config.APIConfig, token TokenSource) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		token:   token,
	}
}

// Login posts the form-encoded credentials and returns the access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/users/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return payload.AccessToken, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, profile user.Profile) error {
	body, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/users/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiError(resp)
	}
	return nil
}

// ListUpcoming fetches appointments still ahead.
func (c *Client) ListUpcoming(ctx context.Context) ([]appointment.Appointment, error) {
	return c.listAppointments(ctx, "/appointments/me/upcoming")
}

// ListPast fetches appointments already held.
func (c *Client) ListPast(ctx context.Context) ([]appointment.Appointment, error) {
	return c.listAppointments(ctx, "/appointments/me/past")
}

func (c *Client) listAppointments(ctx context.Context, path string) ([]appointment.Appointment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token, ok := c.token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var appointments []appointment.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}

// apiError extracts the backend's error message, falling back to the status.
func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s", payload.Error)
	}
	return fmt.Errorf("backend returned %s", resp.Status)
}
