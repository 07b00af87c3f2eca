package models

import "github.com/shopspring/decimal"

// ContractDetail is the per-contract margin breakdown inside a cross account.
type ContractDetail struct {
	Symbol           string          `json:"symbol"`
	ContractCode     string          `json:"contract_code"`
	MarginPosition   decimal.Decimal `json:"margin_position"`
	MarginFrozen     decimal.Decimal `json:"margin_frozen"`
	MarginAvailable  decimal.Decimal `json:"margin_available"`
	ProfitUnreal     decimal.Decimal `json:"profit_unreal"`
	LiquidationPrice decimal.Decimal `json:"liquidation_price"`
	LeverRate        decimal.Decimal `json:"lever_rate"`
	AdjustFactor     decimal.Decimal `json:"adjust_factor"`
}

// AccountInfo is the pooled cross-margin account state.
type AccountInfo struct {
	MarginMode        MarginMode       `json:"margin_mode"`
	MarginAccount     string           `json:"margin_account"`
	MarginAsset       string           `json:"margin_asset"`
	MarginBalance     decimal.Decimal  `json:"margin_balance"`
	MarginStatic      decimal.Decimal  `json:"margin_static"`
	MarginPosition    decimal.Decimal  `json:"margin_position"`
	MarginFrozen      decimal.Decimal  `json:"margin_frozen"`
	ProfitReal        decimal.Decimal  `json:"profit_real"`
	ProfitUnreal      decimal.Decimal  `json:"profit_unreal"`
	WithdrawAvailable decimal.Decimal  `json:"withdraw_available"`
	RiskRate          decimal.Decimal  `json:"risk_rate"`
	ContractDetail    []ContractDetail `json:"contract_detail"`
}

// Position is one open cross-margin position. Volume, Available and Frozen
// are lot counts.
type Position struct {
	Symbol         string          `json:"symbol"`
	ContractCode   string          `json:"contract_code"`
	Volume         decimal.Decimal `json:"volume"`
	Available      decimal.Decimal `json:"available"`
	Frozen         decimal.Decimal `json:"frozen"`
	CostOpen       decimal.Decimal `json:"cost_open"`
	CostHold       decimal.Decimal `json:"cost_hold"`
	ProfitUnreal   decimal.Decimal `json:"profit_unreal"`
	ProfitRate     decimal.Decimal `json:"profit_rate"`
	LeverRate      int             `json:"lever_rate"`
	PositionMargin decimal.Decimal `json:"position_margin"`
	Direction      Direction       `json:"direction"`
	Profit         decimal.Decimal `json:"profit"`
	LastPrice      decimal.Decimal `json:"last_price"`
	MarginAsset    string          `json:"margin_asset"`
	MarginMode     MarginMode      `json:"margin_mode"`
	MarginAccount  string          `json:"margin_account"`
}

// AvailableLevelRate lists the leverage multipliers a contract currently
// allows, comma-joined the way the exchange reports them.
type AvailableLevelRate struct {
	ContractCode       string     `json:"contract_code"`
	AvailableLevelRate string     `json:"available_level_rate"`
	MarginMode         MarginMode `json:"margin_mode"`
}
