// Package stacks implements a client for the Hiro Stacks blockchain API.
package stacks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

const (
	mainnetAPI = "https://api.mainnet.hiro.so"
	testnetAPI = "https://api.testnet.hiro.so"

	// STX amounts are reported in micro-STX.
	microSTXDecimals = 6

	// The provider caps transaction listings at 50 entries per page.
	maxTransactionLimit = 50

	defaultTimeout           = 30 * time.Second
	defaultCacheTTL          = 300 * time.Second
	defaultRequestsPerSecond = 10

	maxErrorBodyBytes = 512
)

type (
	// Cache is the keyed TTL store used for successful balance responses.
	// Injected so tests can substitute a deterministic implementation.
	Cache interface {
		Get(key string) ([]byte, bool)
		Set(key string, value []byte, ttl time.Duration)
	}

	// Metrics records outcomes of chain API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config controls the client's network, timeouts and caching.
type Config struct {
	Network           model.Network
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerSecond int
	// BaseURL overrides the network-derived endpoint. Tests point it at a
	// local server.
	BaseURL string
}

// Client fetches address balances and metadata from the Hiro extended API.
//
// Successful balance responses are cached for the configured TTL; transaction
// listings are never cached. The client performs no retries: a failed call
// surfaces as an UnavailableError and retry policy belongs to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	network    model.Network
	cacheTTL   time.Duration
	cache      Cache
	rl         ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs a Client. cache and metrics are required; the zero
// Config falls back to mainnet defaults except for Network, which must be
// set explicitly.
func NewClient(cfg Config, cache Cache, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if !cfg.Network.Valid() {
		return nil, fmt.Errorf("unsupported network %q", cfg.Network)
	}
	if cache == nil {
		return nil, errors.New("cache is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = mainnetAPI
		if cfg.Network == model.Testnet {
			baseURL = testnetAPI
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		network:    cfg.Network,
		cacheTTL:   cacheTTL,
		cache:      cache,
		rl:         ratelimit.New(rps),
		metrics:    metrics,
		logger:     logger.With(zap.String("network", string(cfg.Network))),
	}, nil
}

// GetBalance returns the STX balance of an address in standard units.
func (c *Client) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	return c.balance(ctx, "get_balance", address, true)
}

// GetAddressInfo returns the full normalized balance view of an address.
func (c *Client) GetAddressInfo(ctx context.Context, address string) (*AddressInfo, error) {
	body, err := c.fetch(ctx, "get_address_info", balancesEndpoint(address), true)
	if err != nil {
		return nil, err
	}
	stx, err := c.decodeBalances("get_address_info", body)
	if err != nil {
		return nil, err
	}

	info := &AddressInfo{UnlockHeight: stx.UnlockHeight}
	fields := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{stx.Balance, &info.Balance},
		{stx.Locked, &info.Locked},
		{stx.TotalSent, &info.TotalSent},
		{stx.TotalReceived, &info.TotalReceived},
		{stx.TotalFeesSent, &info.TotalFeesSent},
	}
	for _, f := range fields {
		v, err := microSTXToSTX(f.raw)
		if err != nil {
			return nil, &UnavailableError{Kind: FailureDecode, Operation: "get_address_info", cause: err}
		}
		*f.dst = v
	}
	return info, nil
}

// GetRecentTransactions lists an address's most recent transactions, newest
// first. Listings are freshness-critical and bypass the cache. limit is
// clamped to the provider maximum.
func (c *Client) GetRecentTransactions(ctx context.Context, address string, limit int) ([]TransactionRecord, error) {
	if limit <= 0 || limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	endpoint := fmt.Sprintf("/extended/v1/address/%s/transactions?limit=%d", address, limit)
	body, err := c.fetch(ctx, "get_recent_transactions", endpoint, false)
	if err != nil {
		return nil, err
	}

	var resp transactionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("malformed transactions response", zap.Error(err))
		return nil, &UnavailableError{Kind: FailureDecode, Operation: "get_recent_transactions", cause: err}
	}
	return resp.Results, nil
}

// ValidateAddress reports whether a balance lookup for the address resolves.
// This is an existence probe against the chain, not a format check, so it
// bypasses the cache.
func (c *Client) ValidateAddress(ctx context.Context, address string) bool {
	_, err := c.balance(ctx, "validate_address", address, false)
	return err == nil
}

func (c *Client) balance(ctx context.Context, op, address string, useCache bool) (decimal.Decimal, error) {
	body, err := c.fetch(ctx, op, balancesEndpoint(address), useCache)
	if err != nil {
		return decimal.Decimal{}, err
	}
	stx, err := c.decodeBalances(op, body)
	if err != nil {
		return decimal.Decimal{}, err
	}
	v, err := microSTXToSTX(stx.Balance)
	if err != nil {
		c.logger.Error("malformed balance amount", zap.String("raw", stx.Balance), zap.Error(err))
		return decimal.Decimal{}, &UnavailableError{Kind: FailureDecode, Operation: op, cause: err}
	}
	return v, nil
}

// fetch executes one GET against the provider, consulting the response cache
// first when useCache is set. A cache hit short-circuits the network call
// entirely, including the rate limiter.
func (c *Client) fetch(ctx context.Context, op, endpoint string, useCache bool) (body []byte, err error) {
	cacheKey := fmt.Sprintf("stacks_api_%s_%s", c.network, strings.ReplaceAll(endpoint, "/", "_"))
	if useCache {
		if cached, ok := c.cache.Get(cacheKey); ok {
			c.logger.Debug("cache hit", zap.String("endpoint", endpoint))
			return cached, nil
		}
	}

	started := time.Now()
	defer func() {
		c.metrics.Observe(op, err, started)
	}()

	c.rl.Take()

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &UnavailableError{Kind: FailureTransport, Operation: op, cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Error("request timed out", zap.String("url", url), zap.Error(err))
		} else {
			c.logger.Error("request failed", zap.String("url", url), zap.Error(err))
		}
		return nil, &UnavailableError{Kind: FailureTransport, Operation: op, cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Warn("remote returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return nil, &UnavailableError{Kind: FailureRemote, Operation: op, Status: resp.StatusCode}
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Kind: FailureTransport, Operation: op, cause: err}
	}

	// Only bodies that are at least valid JSON are cached. A proxy error
	// page behind a 200 must not pin decode failures for the whole TTL.
	if useCache && json.Valid(body) {
		c.cache.Set(cacheKey, body, c.cacheTTL)
	}
	return body, nil
}

func (c *Client) decodeBalances(op string, body []byte) (stxBalance, error) {
	var resp balancesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("malformed balances response", zap.Error(err))
		return stxBalance{}, &UnavailableError{Kind: FailureDecode, Operation: op, cause: err}
	}
	if resp.STX.Balance == "" {
		err := errors.New("response missing stx.balance")
		c.logger.Error("unexpected balances response shape", zap.Error(err))
		return stxBalance{}, &UnavailableError{Kind: FailureDecode, Operation: op, cause: err}
	}
	return resp.STX, nil
}

func balancesEndpoint(address string) string {
	return fmt.Sprintf("/extended/v1/address/%s/balances", address)
}

// microSTXToSTX converts a micro-STX integer string to STX using exact
// decimal arithmetic. Binary floating point never enters the conversion.
func microSTXToSTX(raw string) (decimal.Decimal, error) {
	if raw == "" {
		raw = "0"
	}
	micro, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse micro-stx amount %q: %w", raw, err)
	}
	return micro.Shift(-microSTXDecimals), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
