package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError is a locally detected request defect. The request never
// reaches the exchange.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// PrecisionError reports a price that does not fit the contract's price tick.
type PrecisionError struct {
	Value decimal.Decimal
	Tick  decimal.Decimal
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("price %s is not a positive multiple of tick %s", e.Value, e.Tick)
}

// OrderRejected means the exchange accepted the call but declined the business
// action. Code and Message carry the exchange error verbatim.
type OrderRejected struct {
	Code    int64
	Message string
}

func (e *OrderRejected) Error() string {
	return fmt.Sprintf("exchange rejected request: code %d: %s", e.Code, e.Message)
}

// TransportError wraps a network, timeout or HTTP-level failure. The call's
// fate is unknown: the order may or may not have reached the exchange, so
// retries are only safe with a stable client order id.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponse means the exchange answered but the payload violates the
// documented shape or a reconciliation invariant.
type MalformedResponse struct {
	Reason string
}

func (e *MalformedResponse) Error() string {
	return fmt.Sprintf("malformed exchange response: %s", e.Reason)
}
