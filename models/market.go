package models

import "github.com/shopspring/decimal"

// ContractInfoRequest filters the contract metadata query. Empty fields are
// omitted and the exchange returns all contracts.
type ContractInfoRequest struct {
	ContractCode      string
	SupportMarginMode MarginMode
}

// ContractInfo is one listed contract's metadata.
type ContractInfo struct {
	Symbol            string          `json:"symbol"`
	ContractCode      string          `json:"contract_code"`
	ContractSize      decimal.Decimal `json:"contract_size"`
	PriceTick         decimal.Decimal `json:"price_tick"`
	DeliveryTime      string          `json:"delivery_time"`
	CreateDate        string          `json:"create_date"`
	ContractStatus    int             `json:"contract_status"`
	SettlementDate    string          `json:"settlement_date"`
	SupportMarginMode MarginMode      `json:"support_margin_mode"`
}

// IndexRecord is the index price of one contract.
type IndexRecord struct {
	ContractCode string          `json:"contract_code"`
	IndexPrice   decimal.Decimal `json:"index_price"`
	IndexTs      int64           `json:"index_ts"`
}

// PriceLimit carries the current highest bid and lowest ask the exchange will
// accept for a contract.
type PriceLimit struct {
	Symbol       string          `json:"symbol"`
	ContractCode string          `json:"contract_code"`
	HighLimit    decimal.Decimal `json:"high_limit"`
	LowLimit     decimal.Decimal `json:"low_limit"`
}

// HistoryKlineRequest asks for historical candles. Size defaults to 150
// exchange-side; From and To are 10-digit unix seconds.
type HistoryKlineRequest struct {
	ContractCode string
	Period       KlinePeriod
	Size         int
	From         string
	To           string
}

// Kline is one candle. Amount is volume in coin, Vol in lots; turnover and
// count aggregate both sides of each fill.
type Kline struct {
	ID            int64           `json:"id"`
	Open          decimal.Decimal `json:"open"`
	Close         decimal.Decimal `json:"close"`
	Low           decimal.Decimal `json:"low"`
	High          decimal.Decimal `json:"high"`
	Amount        decimal.Decimal `json:"amount"`
	Vol           decimal.Decimal `json:"vol"`
	TradeTurnover decimal.Decimal `json:"trade_turnover"`
	Count         decimal.Decimal `json:"count"`
}
