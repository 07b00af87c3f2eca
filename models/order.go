package models

import "github.com/shopspring/decimal"

// OrderRequest is the placement body for a cross-margin order. Volume is an
// integer count of lots, never a coin amount. Price fields are pointers so
// book-priced order types can omit them entirely.
//
// PriceTick never goes on the wire: callers that want placement-time tick
// validation fill it from a prior ContractInfo call.
type OrderRequest struct {
	ContractCode   string           `json:"contract_code"`
	ClientOrderID  string           `json:"client_order_id,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Volume         int64            `json:"volume"`
	Direction      Direction        `json:"direction"`
	Offset         Offset           `json:"offset"`
	LeverRate      int              `json:"lever_rate"`
	OrderPriceType OrderPriceType   `json:"order_price_type"`

	TpTriggerPrice   *decimal.Decimal `json:"tp_trigger_price,omitempty"`
	TpOrderPrice     *decimal.Decimal `json:"tp_order_price,omitempty"`
	TpOrderPriceType OrderPriceType   `json:"tp_order_price_type,omitempty"`
	SlTriggerPrice   *decimal.Decimal `json:"sl_trigger_price,omitempty"`
	SlOrderPrice     *decimal.Decimal `json:"sl_order_price,omitempty"`
	SlOrderPriceType OrderPriceType   `json:"sl_order_price_type,omitempty"`

	PriceTick decimal.Decimal `json:"-"`
}

// OrderResult acknowledges a placement. OrderID loses precision above 2^53
// when it travels as a JSON number; OrderIDStr is the authoritative id.
type OrderResult struct {
	OrderID       decimal.Decimal `json:"order_id"`
	OrderIDStr    string          `json:"order_id_str"`
	ClientOrderID decimal.Decimal `json:"client_order_id"`
}

// OrderInfoRequest looks up orders by exchange or client id, comma-joined on
// the wire, at most 50 combined per call.
type OrderInfoRequest struct {
	ContractCode   string
	OrderIDs       []string
	ClientOrderIDs []string
}

// OrderInfo is the full exchange-side order record.
type OrderInfo struct {
	Symbol          string          `json:"symbol"`
	ContractCode    string          `json:"contract_code"`
	Volume          decimal.Decimal `json:"volume"`
	Price           decimal.Decimal `json:"price"`
	OrderPriceType  OrderPriceType  `json:"order_price_type"`
	OrderType       int             `json:"order_type"`
	Direction       Direction       `json:"direction"`
	Offset          Offset          `json:"offset"`
	LeverRate       int             `json:"lever_rate"`
	OrderID         decimal.Decimal `json:"order_id"`
	OrderIDStr      string          `json:"order_id_str"`
	ClientOrderID   decimal.Decimal `json:"client_order_id"`
	CreatedAt       int64           `json:"created_at"`
	TradeVolume     decimal.Decimal `json:"trade_volume"`
	TradeTurnover   decimal.Decimal `json:"trade_turnover"`
	Fee             decimal.Decimal `json:"fee"`
	TradeAvgPrice   decimal.Decimal `json:"trade_avg_price"`
	MarginFrozen    decimal.Decimal `json:"margin_frozen"`
	Profit          decimal.Decimal `json:"profit"`
	Status          OrderStatus     `json:"status"`
	OrderSource     OrderSource     `json:"order_source"`
	FeeAsset        string          `json:"fee_asset"`
	LiquidationType string          `json:"liquidation_type"`
	CanceledAt      int64           `json:"canceled_at"`
	MarginAsset     string          `json:"margin_asset"`
	MarginAccount   string          `json:"margin_account"`
	MarginMode      MarginMode      `json:"margin_mode"`
	IsTpsl          int             `json:"is_tpsl"`
	RealProfit      decimal.Decimal `json:"real_profit"`
}

// OrderDetailRequest fetches one order with its fill list. CreatedAt and
// OrderType narrow the exchange-side lookup; PageIndex/PageSize page the
// trades.
type OrderDetailRequest struct {
	ContractCode string
	OrderID      string
	CreatedAt    int64
	OrderType    int
	PageIndex    int
	PageSize     int
}

// Trade is a single fill of an order.
type Trade struct {
	ID            string          `json:"id"`
	TradeID       decimal.Decimal `json:"trade_id"`
	TradeVolume   decimal.Decimal `json:"trade_volume"`
	TradePrice    decimal.Decimal `json:"trade_price"`
	TradeFee      decimal.Decimal `json:"trade_fee"`
	TradeTurnover decimal.Decimal `json:"trade_turnover"`
	Role          string          `json:"role"`
	Profit        decimal.Decimal `json:"profit"`
	RealProfit    decimal.Decimal `json:"real_profit"`
	FeeAsset      string          `json:"fee_asset"`
	CreatedAt     int64           `json:"created_at"`
}

// OrderDetail is one order plus its paged fills.
type OrderDetail struct {
	Symbol         string          `json:"symbol"`
	ContractCode   string          `json:"contract_code"`
	Volume         decimal.Decimal `json:"volume"`
	Price          decimal.Decimal `json:"price"`
	OrderPriceType OrderPriceType  `json:"order_price_type"`
	Direction      Direction       `json:"direction"`
	Offset         Offset          `json:"offset"`
	LeverRate      int             `json:"lever_rate"`
	MarginFrozen   decimal.Decimal `json:"margin_frozen"`
	Profit         decimal.Decimal `json:"profit"`
	OrderSource    OrderSource     `json:"order_source"`
	CreatedAt      int64           `json:"created_at"`
	CanceledAt     int64           `json:"canceled_at"`
	OrderID        decimal.Decimal `json:"order_id"`
	OrderIDStr     string          `json:"order_id_str"`
	ClientOrderID  decimal.Decimal `json:"client_order_id"`
	OrderType      int             `json:"order_type"`
	Status         OrderStatus     `json:"status"`
	TradeVolume    decimal.Decimal `json:"trade_volume"`
	TradeTurnover  decimal.Decimal `json:"trade_turnover"`
	TradeAvgPrice  decimal.Decimal `json:"trade_avg_price"`
	Fee            decimal.Decimal `json:"fee"`
	FeeAsset       string          `json:"fee_asset"`
	MarginAsset    string          `json:"margin_asset"`
	MarginAccount  string          `json:"margin_account"`
	MarginMode     MarginMode      `json:"margin_mode"`
	RealProfit     decimal.Decimal `json:"real_profit"`
	TotalPage      int             `json:"total_page"`
	CurrentPage    int             `json:"current_page"`
	TotalSize      int             `json:"total_size"`
	Trades         []Trade         `json:"trades"`
}
