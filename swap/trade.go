package swap

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"swapflow/gateway"
	"swapflow/logger"
	"swapflow/models"
)

const (
	maxCancelBatch    = 10
	maxOrderInfoBatch = 50
)

// PlaceOrder validates and submits one order. Exactly one gateway call is
// issued; business rejections (insufficient margin, leverage conflict,
// suspended contract) surface as *models.OrderRejected and are never retried
// here. A *models.TransportError leaves the order's fate unknown — callers
// that retry should pin a client order id and treat a duplicate-id rejection
// as confirmation of the original attempt.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResult, error) {
	if err := c.validateOrder(&req); err != nil {
		return nil, err
	}

	var out models.OrderResult
	if err := c.call(ctx, gateway.Request{Path: pathOrder, Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	logger.IncrementOrderPlaced()

	c.log.WithComponent("swap_trade").WithFields(logger.Fields{
		"contract_code": req.ContractCode,
		"direction":     req.Direction,
		"offset":        req.Offset,
		"order_id":      out.OrderIDStr,
	}).Info("order placed")

	return &out, nil
}

func (c *Client) validateOrder(req *models.OrderRequest) error {
	if req.ContractCode == "" {
		return &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	if req.Volume <= 0 {
		return &models.ValidationError{Field: "volume", Reason: "must be a positive lot count"}
	}
	if req.LeverRate < 1 {
		return &models.ValidationError{Field: "lever_rate", Reason: "must be at least 1"}
	}
	if !req.Direction.Valid() {
		return &models.ValidationError{Field: "direction", Reason: "must be buy or sell"}
	}
	if !req.Offset.Valid() {
		return &models.ValidationError{Field: "offset", Reason: "must be open or close"}
	}
	if !req.OrderPriceType.Valid() {
		return &models.ValidationError{Field: "order_price_type", Reason: "unknown order price type"}
	}
	if req.OrderPriceType.PriceRequired() && req.Price == nil {
		return &models.ValidationError{Field: "price", Reason: "required for " + string(req.OrderPriceType)}
	}

	if c.cfg.Validation.EnablePriceValidation && req.Price != nil && req.PriceTick.Sign() > 0 {
		if err := models.CheckPriceTick(*req.Price, req.PriceTick); err != nil {
			return err
		}
	}

	// An attached trigger defaults its order price type to limit.
	if req.TpTriggerPrice != nil && req.TpOrderPriceType == "" {
		req.TpOrderPriceType = models.PriceTypeLimit
	}
	if req.SlTriggerPrice != nil && req.SlOrderPriceType == "" {
		req.SlOrderPriceType = models.PriceTypeLimit
	}

	return nil
}

// CancelOrders cancels up to ten orders on one contract. The returned result
// partitions the requested ids: every id lands in either Errors or Successes,
// and an id missing from both (or present in both) is reported as a
// *models.MalformedResponse instead of being silently dropped.
func (c *Client) CancelOrders(ctx context.Context, req models.CancelRequest) (*models.CancelResult, error) {
	if req.ContractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	requested := req.RequestedIDs()
	if len(requested) == 0 {
		return nil, &models.ValidationError{Field: "order_id", Reason: "at least one order id or client order id is required"}
	}
	if len(requested) > maxCancelBatch {
		return nil, &models.ValidationError{
			Field:  "order_id",
			Reason: "at most " + strconv.Itoa(maxCancelBatch) + " ids per cancel",
		}
	}

	body := map[string]string{"contract_code": req.ContractCode}
	if len(req.OrderIDs) > 0 {
		body["order_id"] = strings.Join(req.OrderIDs, ",")
	}
	if len(req.ClientOrderIDs) > 0 {
		body["client_order_id"] = strings.Join(req.ClientOrderIDs, ",")
	}

	var out models.CancelResult
	if err := c.call(ctx, gateway.Request{Path: pathCancel, Method: http.MethodPost, Body: body}, &out); err != nil {
		return nil, err
	}

	if err := reconcileCancel(requested, &out); err != nil {
		return nil, err
	}
	for range out.SuccessIDs() {
		logger.IncrementOrderCancelled()
	}

	return &out, nil
}

// reconcileCancel enforces the partition law: errors and successes must
// cover the requested id set exactly once each.
func reconcileCancel(requested []string, res *models.CancelResult) error {
	seen := make(map[string]int, len(requested))
	for _, e := range res.Errors {
		seen[e.OrderID]++
	}
	for _, id := range res.SuccessIDs() {
		seen[id]++
	}

	for _, id := range requested {
		switch seen[id] {
		case 1:
		case 0:
			return &models.MalformedResponse{Reason: "cancel result omits requested id " + id}
		default:
			return &models.MalformedResponse{Reason: "cancel result reports id " + id + " more than once"}
		}
	}
	if len(seen) > len(requested) {
		return &models.MalformedResponse{Reason: "cancel result contains ids that were not requested"}
	}
	return nil
}

// CancelAllOrders cancels every open order matching the filters. The
// requested id set is implicit, so no local reconciliation beyond requiring
// that no id shows up as both a success and an error.
func (c *Client) CancelAllOrders(ctx context.Context, req models.CancelAllRequest) (*models.CancelResult, error) {
	if req.ContractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	if req.Direction != "" && !req.Direction.Valid() {
		return nil, &models.ValidationError{Field: "direction", Reason: "must be buy or sell"}
	}
	if req.Offset != "" && !req.Offset.Valid() {
		return nil, &models.ValidationError{Field: "offset", Reason: "must be open or close"}
	}

	body := map[string]string{"contract_code": req.ContractCode}
	if req.Direction != "" {
		body["direction"] = string(req.Direction)
	}
	if req.Offset != "" {
		body["offset"] = string(req.Offset)
	}

	var out models.CancelResult
	if err := c.call(ctx, gateway.Request{Path: pathCancelAll, Method: http.MethodPost, Body: body}, &out); err != nil {
		return nil, err
	}

	failed := make(map[string]struct{}, len(out.Errors))
	for _, e := range out.Errors {
		failed[e.OrderID] = struct{}{}
	}
	for _, id := range out.SuccessIDs() {
		if _, ok := failed[id]; ok {
			return nil, &models.MalformedResponse{Reason: "cancel result reports id " + id + " as both success and error"}
		}
		logger.IncrementOrderCancelled()
	}

	return &out, nil
}

// SwitchLeverRate changes the contract-wide leverage. Position conflicts and
// the high-leverage agreement gate are enforced exchange-side and come back
// as *models.OrderRejected.
func (c *Client) SwitchLeverRate(ctx context.Context, req models.LeverageSwitchRequest) (*models.LeverageSwitchResult, error) {
	if req.ContractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	if req.LeverRate < 1 {
		return nil, &models.ValidationError{Field: "lever_rate", Reason: "must be at least 1"}
	}

	var out models.LeverageSwitchResult
	if err := c.call(ctx, gateway.Request{Path: pathSwitchLeverRate, Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderInfo looks up up to fifty orders by exchange or client id.
func (c *Client) OrderInfo(ctx context.Context, req models.OrderInfoRequest) ([]models.OrderInfo, error) {
	if req.ContractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	total := len(req.OrderIDs) + len(req.ClientOrderIDs)
	if total == 0 {
		return nil, &models.ValidationError{Field: "order_id", Reason: "at least one order id or client order id is required"}
	}
	if total > maxOrderInfoBatch {
		return nil, &models.ValidationError{
			Field:  "order_id",
			Reason: "at most " + strconv.Itoa(maxOrderInfoBatch) + " ids per lookup",
		}
	}

	body := map[string]string{"contract_code": req.ContractCode}
	if len(req.OrderIDs) > 0 {
		body["order_id"] = strings.Join(req.OrderIDs, ",")
	}
	if len(req.ClientOrderIDs) > 0 {
		body["client_order_id"] = strings.Join(req.ClientOrderIDs, ",")
	}

	var out []models.OrderInfo
	err := c.call(ctx, gateway.Request{Path: pathOrderInfo, Method: http.MethodPost, Body: body}, &out)
	return out, err
}

// OrderDetail fetches one order with its paged fill list.
func (c *Client) OrderDetail(ctx context.Context, req models.OrderDetailRequest) (*models.OrderDetail, error) {
	if req.ContractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	if req.OrderID == "" {
		return nil, &models.ValidationError{Field: "order_id", Reason: "required"}
	}

	body := map[string]any{
		"contract_code": req.ContractCode,
		"order_id":      req.OrderID,
	}
	if req.CreatedAt > 0 {
		body["created_at"] = req.CreatedAt
	}
	if req.OrderType > 0 {
		body["order_type"] = req.OrderType
	}
	if req.PageIndex > 0 {
		body["page_index"] = req.PageIndex
	}
	if req.PageSize > 0 {
		body["page_size"] = req.PageSize
	}

	var out models.OrderDetail
	if err := c.call(ctx, gateway.Request{Path: pathOrderDetail, Method: http.MethodPost, Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
