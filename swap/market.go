package swap

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"swapflow/gateway"
	"swapflow/models"
)

// Market data queries are plain parameter-to-query mappings; empty optional
// fields are omitted and the exchange applies its defaults.

// ContractInfo lists contract metadata, optionally filtered by contract code
// and supported margin mode.
func (c *Client) ContractInfo(ctx context.Context, req models.ContractInfoRequest) ([]models.ContractInfo, error) {
	query := url.Values{}
	if req.ContractCode != "" {
		query.Set("contract_code", req.ContractCode)
	}
	if req.SupportMarginMode != "" {
		query.Set("support_margin_mode", string(req.SupportMarginMode))
	}

	var out []models.ContractInfo
	err := c.call(ctx, gateway.Request{Path: pathContractInfo, Method: http.MethodGet, Query: query}, &out)
	return out, err
}

// Index returns index prices. An empty contract code returns every contract.
func (c *Client) Index(ctx context.Context, contractCode string) ([]models.IndexRecord, error) {
	query := url.Values{}
	if contractCode != "" {
		query.Set("contract_code", contractCode)
	}

	var out []models.IndexRecord
	err := c.call(ctx, gateway.Request{Path: pathIndex, Method: http.MethodGet, Query: query}, &out)
	return out, err
}

// PriceLimit returns the current highest buy and lowest sell limits.
func (c *Client) PriceLimit(ctx context.Context, contractCode string) ([]models.PriceLimit, error) {
	query := url.Values{}
	if contractCode != "" {
		query.Set("contract_code", contractCode)
	}

	var out []models.PriceLimit
	err := c.call(ctx, gateway.Request{Path: pathPriceLimit, Method: http.MethodGet, Query: query}, &out)
	return out, err
}

// HistoryKline fetches historical candles.
func (c *Client) HistoryKline(ctx context.Context, req models.HistoryKlineRequest) ([]models.Kline, error) {
	if req.ContractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	if !req.Period.Valid() {
		return nil, &models.ValidationError{Field: "period", Reason: "unknown kline period"}
	}

	query := url.Values{}
	query.Set("contract_code", req.ContractCode)
	query.Set("period", string(req.Period))
	if req.Size > 0 {
		query.Set("size", strconv.Itoa(req.Size))
	}
	if req.From != "" {
		query.Set("from", req.From)
	}
	if req.To != "" {
		query.Set("to", req.To)
	}

	var out []models.Kline
	err := c.call(ctx, gateway.Request{Path: pathHistoryKline, Method: http.MethodGet, Query: query}, &out)
	return out, err
}
