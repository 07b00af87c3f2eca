// Package swap is the typed client surface for the USDT-margined linear swap
// API in cross-margin mode. It validates and normalizes requests locally,
// delegates the wire call to a gateway.Gateway and maps raw payloads back
// into models types. The client holds no cross-call state; operations are
// independent and safe to issue concurrently.
package swap

import (
	"context"
	"encoding/json"
	"fmt"

	"swapflow/config"
	"swapflow/gateway"
	"swapflow/logger"
	"swapflow/models"
)

const (
	pathContractInfo       = "/linear-swap-api/v1/swap_contract_info"
	pathIndex              = "/linear-swap-api/v1/swap_index"
	pathPriceLimit         = "/linear-swap-api/v1/swap_price_limit"
	pathHistoryKline       = "/linear-swap-ex/market/history/kline"
	pathAccountInfo        = "/linear-swap-api/v1/swap_cross_account_info"
	pathPositionInfo       = "/linear-swap-api/v1/swap_cross_position_info"
	pathAvailableLevelRate = "/linear-swap-api/v1/swap_cross_available_level_rate"
	pathOrder              = "/linear-swap-api/v1/swap_cross_order"
	pathCancel             = "/linear-swap-api/v1/swap_cross_cancel"
	pathCancelAll          = "/linear-swap-api/v1/swap_cross_cancelall"
	pathSwitchLeverRate    = "/linear-swap-api/v1/swap_cross_switch_lever_rate"
	pathOrderInfo          = "/linear-swap-api/v1/swap_cross_order_info"
	pathOrderDetail        = "/linear-swap-api/v1/swap_cross_order_detail"
)

// Client is the facade over the thirteen swap endpoints.
type Client struct {
	cfg *config.Config
	gw  gateway.Gateway
	log *logger.Log
}

// New builds a client with the default signed HTTP gateway.
func New(cfg *config.Config) (*Client, error) {
	gw, err := gateway.NewHTTP(cfg)
	if err != nil {
		return nil, fmt.Errorf("build http gateway: %w", err)
	}
	return NewWithGateway(cfg, gw), nil
}

// NewWithGateway builds a client on a caller-supplied gateway. Any transport
// that satisfies gateway.Gateway can stand behind the contract layer.
func NewWithGateway(cfg *config.Config, gw gateway.Gateway) *Client {
	return &Client{
		cfg: cfg,
		gw:  gw,
		log: logger.GetLogger(),
	}
}

// call issues exactly one gateway call and decodes the data payload into out.
// A payload that does not fit the declared shape is a MalformedResponse, not
// a transport failure.
func (c *Client) call(ctx context.Context, req gateway.Request, out any) error {
	data, err := c.gw.Call(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &models.MalformedResponse{Reason: fmt.Sprintf("decode %s: %v", req.Path, err)}
	}
	return nil
}
