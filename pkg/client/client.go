// Package client is a small API client for the marketing site. It keeps
// the token pair in memory, attaches the access token to every request
// and transparently refreshes it exactly once when a request comes back
// 401. A failed refresh invokes the logout hook so the caller can drop
// the session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

var ErrUnauthorized = errors.New("unauthorized")

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	tokens Tokens

	// OnLogout runs when a refresh attempt fails and the session is dead.
	OnLogout func()
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithTokens(tokens Tokens) Option {
	return func(c *Client) { c.tokens = tokens }
}

func (c *Client) SetTokens(tokens Tokens) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tokens
}

func (c *Client) Tokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens
}

// Do sends a JSON request. A 401 response triggers one refresh attempt
// followed by one retry; a second 401 means the session is gone.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()

		if err := c.refresh(ctx); err != nil {
			if c.OnLogout != nil {
				c.OnLogout()
			}
			return ErrUnauthorized
		}

		resp, err = c.send(ctx, method, path, body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			_ = resp.Body.Close()
			if c.OnLogout != nil {
				c.OnLogout()
			}
			return ErrUnauthorized
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error: %s: %s", resp.Status, bytes.TrimSpace(data))
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if access := c.Tokens().AccessToken; access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	return c.httpClient.Do(req)
}

// refresh exchanges the stored refresh token for a new pair. Concurrent
// callers serialize on the mutex inside SetTokens; the worst case is two
// refreshes where one would do, which the server tolerates because each
// rotation revokes only its own token.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken := c.Tokens().RefreshToken
	if refreshToken == "" {
		return ErrUnauthorized
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUnauthorized
	}

	var body struct {
		Data Tokens `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}

	c.SetTokens(body.Data)

	return nil
}
