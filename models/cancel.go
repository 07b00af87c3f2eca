package models

import "strings"

// CancelRequest cancels up to ten orders on one contract. Ids are
// comma-joined on the wire; the exchange resolves each entry in exactly one
// of the two id namespaces.
type CancelRequest struct {
	ContractCode   string
	OrderIDs       []string
	ClientOrderIDs []string
}

// RequestedIDs returns every id in the request, exchange ids first.
func (r CancelRequest) RequestedIDs() []string {
	ids := make([]string, 0, len(r.OrderIDs)+len(r.ClientOrderIDs))
	ids = append(ids, r.OrderIDs...)
	ids = append(ids, r.ClientOrderIDs...)
	return ids
}

// CancelAllRequest cancels every open order on a contract, optionally
// narrowed by direction and offset. An omitted filter means "all".
type CancelAllRequest struct {
	ContractCode string
	Direction    Direction
	Offset       Offset
}

// CancelError is one order the exchange failed to cancel.
type CancelError struct {
	OrderID string `json:"order_id"`
	ErrCode int64  `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

// CancelResult is a reconciliation report, not a boolean: a single call can
// partially succeed. Successes is the exchange's comma-joined list of
// cancelled ids.
type CancelResult struct {
	Errors    []CancelError `json:"errors"`
	Successes string        `json:"successes"`
}

// SuccessIDs splits the Successes field into individual ids.
func (r CancelResult) SuccessIDs() []string {
	if r.Successes == "" {
		return nil
	}
	return strings.Split(r.Successes, ",")
}

// LeverageSwitchRequest changes the account-wide leverage for a contract.
// The exchange refuses to lower leverage below what an opposite open
// position requires and gates high leverage behind an out-of-band agreement;
// both come back as rejections, not local errors.
type LeverageSwitchRequest struct {
	ContractCode string `json:"contract_code"`
	LeverRate    int    `json:"lever_rate"`
}

// LeverageSwitchResult acknowledges the switch.
type LeverageSwitchResult struct {
	ContractCode string     `json:"contract_code"`
	LeverRate    int        `json:"lever_rate"`
	MarginMode   MarginMode `json:"margin_mode"`
}
