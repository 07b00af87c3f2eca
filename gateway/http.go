package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"swapflow/config"
	"swapflow/logger"
	"swapflow/models"
)

// envelope is the wrapper every REST response arrives in. Market endpoints
// use status "ok"/"error" just like the authenticated ones.
type envelope struct {
	Status  string          `json:"status"`
	ErrCode int64           `json:"err_code"`
	ErrMsg  string          `json:"err_msg"`
	Data    json.RawMessage `json:"data"`
	Ts      int64           `json:"ts"`
	Ch      string          `json:"ch"`
}

// HTTPGateway signs and sends requests against the configured API base URL.
// It performs no retries; callers own that decision.
type HTTPGateway struct {
	baseURL   *url.URL
	accessKey string
	secretKey string
	client    *http.Client
	limiter   *rate.Limiter
	log       *logger.Log
	now       func() time.Time
}

// NewHTTP builds a gateway from config. Credentials may be empty, in which
// case requests go out unsigned and only public endpoints will answer.
func NewHTTP(cfg *config.Config) (*HTTPGateway, error) {
	base, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.API.ConnectionPool.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.API.ConnectionPool.MaxIdleConns,
		MaxConnsPerHost:     cfg.API.ConnectionPool.MaxConnsPerHost,
		IdleConnTimeout:     cfg.API.ConnectionPool.IdleConnTimeout,
	}

	var limiter *rate.Limiter
	if rl := cfg.API.RateLimit; rl.RequestsPerSecond > 0 {
		burst := rl.BurstSize
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), burst)
	}

	return &HTTPGateway{
		baseURL:   base,
		accessKey: cfg.API.AccessKey,
		secretKey: cfg.API.SecretKey,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.API.Timeout,
		},
		limiter: limiter,
		log:     logger.GetLogger(),
		now:     time.Now,
	}, nil
}

// Call implements Gateway.
func (g *HTTPGateway) Call(ctx context.Context, req Request) (json.RawMessage, error) {
	requestID := uuid.NewString()
	log := g.log.WithComponent("gateway").WithFields(logger.Fields{
		"request_id": requestID,
		"path":       req.Path,
		"method":     req.Method,
	})

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, &models.TransportError{Op: "rate limit wait", Err: err}
		}
	}

	query := req.Query
	if query == nil {
		query = url.Values{}
	}
	if g.accessKey != "" {
		query = signedQuery(req.Method, g.baseURL.Host, req.Path, query, g.accessKey, g.secretKey, g.now())
	}

	u := *g.baseURL
	u.Path = req.Path
	u.RawQuery = query.Encode()

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, &models.TransportError{Op: "build request", Err: err}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := g.now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return nil, &models.TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.TransportError{Op: "read response", Err: err}
	}
	logger.IncrementRequest(req.Path, len(payload))
	logger.LogPerformanceEntry(log, "gateway", "api_request", time.Since(start), nil)

	if resp.StatusCode != http.StatusOK {
		log.WithFields(logger.Fields{"status_code": resp.StatusCode}).Warn("unexpected http status")
		return nil, &models.TransportError{
			Op:  "http status",
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload),
		}
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, &models.TransportError{Op: "decode envelope", Err: err}
	}
	if env.Status != "ok" {
		log.WithFields(logger.Fields{"err_code": env.ErrCode, "err_msg": env.ErrMsg}).Warn("exchange rejected request")
		return nil, &models.OrderRejected{Code: env.ErrCode, Message: env.ErrMsg}
	}

	return env.Data, nil
}
