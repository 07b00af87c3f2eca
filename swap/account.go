package swap

import (
	"context"
	"net/http"

	"swapflow/gateway"
	"swapflow/models"
)

// Authenticated account reads. Bodies are pass-throughs; omitted fields make
// the exchange return every account or contract.

// CrossAccountInfo returns the pooled cross-margin account state. The only
// cross margin account today is "USDT"; an empty margin account returns all.
func (c *Client) CrossAccountInfo(ctx context.Context, marginAccount string) ([]models.AccountInfo, error) {
	body := map[string]string{}
	if marginAccount != "" {
		body["margin_account"] = marginAccount
	}

	var out []models.AccountInfo
	err := c.call(ctx, gateway.Request{Path: pathAccountInfo, Method: http.MethodPost, Body: body}, &out)
	return out, err
}

// CrossPositionInfo returns open cross-margin positions.
func (c *Client) CrossPositionInfo(ctx context.Context, contractCode string) ([]models.Position, error) {
	body := map[string]string{}
	if contractCode != "" {
		body["contract_code"] = contractCode
	}

	var out []models.Position
	err := c.call(ctx, gateway.Request{Path: pathPositionInfo, Method: http.MethodPost, Body: body}, &out)
	return out, err
}

// CrossAvailableLevelRate returns the leverage multipliers currently usable
// per contract.
func (c *Client) CrossAvailableLevelRate(ctx context.Context, contractCode string) ([]models.AvailableLevelRate, error) {
	body := map[string]string{}
	if contractCode != "" {
		body["contract_code"] = contractCode
	}

	var out []models.AvailableLevelRate
	err := c.call(ctx, gateway.Request{Path: pathAvailableLevelRate, Method: http.MethodPost, Body: body}, &out)
	return out, err
}
