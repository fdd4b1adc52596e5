// Package backend provides a typed client for the FinaShopping backend API
// with service-account bearer authentication.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production backend when FINASHOPPING_API_URL is unset.
const DefaultBaseURL = "https://finashopping-backend-production.up.railway.app"

// Config carries the connection settings for the backend client.
type Config struct {
	BaseURL  string
	Username string
	Password string
}

// Client is an authenticated HTTP client for the FinaShopping backend.
// All catalog endpoints require a bearer token; Health does not.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
	tokens *tokenCache
}

// New returns a client for the given backend. If httpClient is nil, a default
// with a 10s timeout is used.
func New(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    Config{BaseURL: strings.TrimRight(cfg.BaseURL, "/"), Username: cfg.Username, Password: cfg.Password},
		http:   httpClient,
		logger: logger,
		tokens: &tokenCache{},
	}
}

// BaseURL reports the configured backend base URL.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// authenticate logs in with the service credentials and caches the token.
func (c *Client) authenticate(ctx context.Context) error {
	if c.cfg.Username == "" || c.cfg.Password == "" {
		return &ConfigError{Missing: "FINASHOPPING_SERVICE_USERNAME y FINASHOPPING_SERVICE_PASSWORD"}
	}

	body, err := json.Marshal(loginRequest{Username: c.cfg.Username, Password: c.cfg.Password})
	if err != nil {
		return fmt.Errorf("encode login request: %w", err)
	}

	url := c.cfg.BaseURL + "/auth/v1/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &AuthError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil && resp.StatusCode == http.StatusOK {
		return &AuthError{Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK || !login.Success {
		msg := login.Message
		if msg == "" {
			msg = fmt.Sprintf("login failed (HTTP %d)", resp.StatusCode)
		}
		return &AuthError{Message: msg}
	}

	c.tokens.set(login.Token)
	c.logger.Info("authenticated with backend", zap.String("url", url))
	return nil
}

// ensureToken returns a valid bearer token, logging in if needed.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	if token, ok := c.tokens.get(); ok {
		return token, nil
	}
	if err := c.authenticate(ctx); err != nil {
		return "", err
	}
	token, _ := c.tokens.get()
	return token, nil
}

// get issues an authenticated GET and decodes the JSON response into out.
// A 401 triggers one re-authenticate-and-retry; a second 401 is surfaced.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doGet(ctx, path, out, false)
}

func (c *Client) doGet(ctx context.Context, path string, out any, retried bool) error {
	url := c.cfg.BaseURL + path

	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", zap.String("url", url), zap.Error(err))
		return &APIError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		c.logger.Warn("token rejected, re-authenticating", zap.String("url", url))
		c.tokens.invalidate()
		if err := c.authenticate(ctx); err != nil {
			return err
		}
		return c.doGet(ctx, path, out, true)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("backend returned error status",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		return &APIError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

// Health checks backend liveness. No authentication required.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	url := c.cfg.BaseURL + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{URL: url, StatusCode: resp.StatusCode}
	}
	var health HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &health, nil
}

// Loans fetches the loan catalog.
func (c *Client) Loans(ctx context.Context) ([]Loan, error) {
	var resp loansResponse
	if err := c.get(ctx, "/api/v1/loans", &resp); err != nil {
		return nil, err
	}
	return resp.Loans, nil
}

// CreditCards fetches the credit card catalog.
func (c *Client) CreditCards(ctx context.Context) ([]CreditCard, error) {
	var resp creditCardsResponse
	if err := c.get(ctx, "/api/v1/credit-cards", &resp); err != nil {
		return nil, err
	}
	return resp.CreditCards, nil
}

// Insurances fetches the insurance catalog.
func (c *Client) Insurances(ctx context.Context) ([]Insurance, error) {
	var resp insurancesResponse
	if err := c.get(ctx, "/api/v1/insurances", &resp); err != nil {
		return nil, err
	}
	return resp.Insurances, nil
}

// Guarantees fetches the rental guarantee catalog.
func (c *Client) Guarantees(ctx context.Context) ([]Guarantee, error) {
	var resp guaranteesResponse
	if err := c.get(ctx, "/api/v1/guarantees", &resp); err != nil {
		return nil, err
	}
	return resp.Guarantees, nil
}

// Benefits fetches available benefits and discounts.
func (c *Client) Benefits(ctx context.Context) ([]Benefit, error) {
	var resp benefitsResponse
	if err := c.get(ctx, "/api/v1/benefits", &resp); err != nil {
		return nil, err
	}
	return resp.Benefits, nil
}

// CreditProfile fetches the credit profile snapshot.
func (c *Client) CreditProfile(ctx context.Context) (*CreditProfile, error) {
	var profile CreditProfile
	if err := c.get(ctx, "/api/v1/credit-profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreditQueries fetches the credit inquiry history.
func (c *Client) CreditQueries(ctx context.Context) ([]CreditQuery, error) {
	var resp creditQueriesResponse
	if err := c.get(ctx, "/api/v1/credit-queries", &resp); err != nil {
		return nil, err
	}
	return resp.Queries, nil
}

// ChartData fetches credit score history series.
func (c *Client) ChartData(ctx context.Context) (*ChartData, error) {
	var data ChartData
	if err := c.get(ctx, "/api/v1/chart-data", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FinancialTools fetches the list of external financial tools.
func (c *Client) FinancialTools(ctx context.Context) ([]FinancialTool, error) {
	var resp financialToolsResponse
	if err := c.get(ctx, "/api/v1/financial-tools", &resp); err != nil {
		return nil, err
	}
	return resp.Tools, nil
}
