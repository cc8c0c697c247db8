// Package cms is a typed client for the MedLife platform API. The dashboard
// uses it to read universities, study structure, materials and users, and to
// moderate subscription requests.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/sabur-pro/rayan-admin/config"
	appErrors "github.com/sabur-pro/rayan-admin/internal/errors"
	"github.com/sabur-pro/rayan-admin/internal/logger"
)

// fetchAllPageCap bounds the page walk in FetchAll-style helpers so a
// misreported total_count cannot loop forever.
const fetchAllPageCap = 1000

type Client struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	// serializes refresh attempts so concurrent 401s trigger one call
	refreshMu sync.Mutex
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:      cfg.CMS.BaseURL,
		http:         &http.Client{Timeout: cfg.CMS.Timeout},
		accessToken:  cfg.CMS.AccessToken,
		refreshToken: cfg.CMS.RefreshToken,
	}
}

// SignIn exchanges credentials for a token pair and stores it on the client.
func (c *Client) SignIn(ctx context.Context, login, password string) error {
	var auth AuthResponse
	err := c.doUnauthenticated(ctx, http.MethodPost, "/auth/sign-in", map[string]string{
		"login":    login,
		"password": password,
	}, &auth)
	if err != nil {
		return err
	}

	c.setTokens(auth.AccessToken, auth.RefreshToken)
	return nil
}

// SignOut revokes the session upstream and drops the local tokens. Upstream
// failures are logged and swallowed, the local session ends either way.
func (c *Client) SignOut(ctx context.Context) {
	if err := c.do(ctx, http.MethodPost, "/auth/sign-out", nil, nil, nil); err != nil {
		logger.Warn().Err(err).Msg("platform sign-out failed")
	}
	c.setTokens("", "")
}

func (c *Client) setTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	if refresh != "" || access == "" {
		c.refreshToken = refresh
	}
}

func (c *Client) currentAccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

// refresh obtains a new access token. stale is the token that just got a 401;
// if another request already refreshed past it, the newer token is returned
// without an extra round trip.
func (c *Client) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.mu.Lock()
	current := c.accessToken
	refreshToken := c.refreshToken
	c.mu.Unlock()

	if current != "" && current != stale {
		return current, nil
	}
	if refreshToken == "" {
		return "", appErrors.ErrUpstream.WithDetails(map[string]interface{}{
			"reason": "no refresh token available",
		})
	}

	var auth AuthResponse
	err := c.doUnauthenticated(ctx, http.MethodPost, "/auth/refresh-token", map[string]string{
		"refresh_token": refreshToken,
	}, &auth)
	if err != nil {
		c.setTokens("", "")
		return "", err
	}

	c.setTokens(auth.AccessToken, auth.RefreshToken)
	logger.Info().Msg("platform access token refreshed")
	return auth.AccessToken, nil
}

// do issues an authenticated JSON request. On a 401 it refreshes the access
// token and retries once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	token := c.currentAccessToken()

	status, err := c.send(ctx, method, path, query, body, token, out)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return nil
	}

	token, err = c.refresh(ctx, token)
	if err != nil {
		return err
	}

	status, err = c.send(ctx, method, path, query, body, token, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return appErrors.ErrUpstream.WithDetails(map[string]interface{}{
			"reason": "still unauthorized after token refresh",
			"path":   path,
		})
	}
	return nil
}

func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body, out interface{}) error {
	_, err := c.send(ctx, method, path, nil, body, "", out)
	return err
}

// send performs one HTTP exchange. A 401 with a bearer token present is
// reported through the status return so the caller can refresh; every other
// non-2xx status becomes an upstream error.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}, token string, out interface{}) (int, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, appErrors.ErrInternalServer.WithError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, appErrors.ErrInternalServer.WithError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, appErrors.ErrUpstream.WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return resp.StatusCode, appErrors.ErrUpstream.WithDetails(map[string]interface{}{
			"status": resp.StatusCode,
			"path":   path,
			"body":   string(text),
		})
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, appErrors.ErrUpstream.WithError(err).WithDetails(map[string]interface{}{
			"path": path,
		})
	}
	return resp.StatusCode, nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
