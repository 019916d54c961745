// Package api implements the HTTP client for the userdesk REST API.
//
// All methods decode the server's `{"error": "..."}` body on failure and
// classify the response status into the shared sentinel errors, so callers
// can branch with errors.Is while still showing the server's message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/shared"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// UserData carries the editable fields of a create or update call.
type UserData struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// classify maps a response status to a sentinel, keeping the server's
// message for display. Conflict and validation share status 400 on the
// wire; the duplicate-email message distinguishes them.
func classify(status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrorNotFound, msg)
	case status == http.StatusBadRequest && strings.Contains(msg, "already exists"):
		return fmt.Errorf("%w: %s", shared.ErrorAlreadyExists, msg)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", shared.ErrorValidation, msg)
	default:
		return fmt.Errorf("%w: %s", shared.ErrorInternal, msg)
	}
}

// do performs a request and decodes a successful JSON response into out
// (when out is non-nil). Failure responses are classified; transport
// failures are returned as-is.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return classify(resp.StatusCode, e.Error)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Ping checks server reachability using the list endpoint, as the browser
// client does for its connectivity check.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/usuarios", nil, nil)
}

func (c *Client) List(ctx context.Context) ([]models.User, error) {
	var list []models.User
	if err := c.do(ctx, http.MethodGet, "/api/usuarios", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/usuarios/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Create(ctx context.Context, data UserData) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/usuarios", data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Update(ctx context.Context, id int64, data UserData) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", id), data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", id), nil, nil)
}
