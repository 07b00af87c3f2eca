package models

// Closed code sets shared by every request and response shape of the
// linear-swap API. Values are the exchange's wire strings.

// MarginMode identifies how margin is pooled for an account, position or
// contract. "all" only ever appears as a filter value in contract metadata,
// never as an actual account state.
type MarginMode string

const (
	MarginModeCross    MarginMode = "cross"
	MarginModeIsolated MarginMode = "isolated"
	MarginModeAll      MarginMode = "all"
)

func (m MarginMode) Valid() bool {
	switch m {
	case MarginModeCross, MarginModeIsolated, MarginModeAll:
		return true
	}
	return false
}

// Direction is the trade side of an order or position.
type Direction string

const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

func (d Direction) Valid() bool {
	return d == DirectionBuy || d == DirectionSell
}

// Offset says whether an order opens or closes a position. Together with
// Direction it fully characterises an order; the four combinations are the
// only valid states.
type Offset string

const (
	OffsetOpen  Offset = "open"
	OffsetClose Offset = "close"
)

func (o Offset) Valid() bool {
	return o == OffsetOpen || o == OffsetClose
}

// OrderPriceType is the exchange's order pricing mode.
type OrderPriceType string

const (
	PriceTypeLimit        OrderPriceType = "limit"
	PriceTypeOpponent     OrderPriceType = "opponent"
	PriceTypePostOnly     OrderPriceType = "post_only"
	PriceTypeOptimal5     OrderPriceType = "optimal_5"
	PriceTypeOptimal10    OrderPriceType = "optimal_10"
	PriceTypeOptimal20    OrderPriceType = "optimal_20"
	PriceTypeIOC          OrderPriceType = "ioc"
	PriceTypeFOK          OrderPriceType = "fok"
	PriceTypeOpponentIOC  OrderPriceType = "opponent_ioc"
	PriceTypeOptimal5IOC  OrderPriceType = "optimal_5_ioc"
	PriceTypeOptimal10IOC OrderPriceType = "optimal_10_ioc"
	PriceTypeOptimal20IOC OrderPriceType = "optimal_20_ioc"
	PriceTypeOpponentFOK  OrderPriceType = "opponent_fok"
	PriceTypeOptimal5FOK  OrderPriceType = "optimal_5_fok"
	PriceTypeOptimal10FOK OrderPriceType = "optimal_10_fok"
	PriceTypeOptimal20FOK OrderPriceType = "optimal_20_fok"
)

var orderPriceTypes = map[OrderPriceType]struct{}{
	PriceTypeLimit: {}, PriceTypeOpponent: {}, PriceTypePostOnly: {},
	PriceTypeOptimal5: {}, PriceTypeOptimal10: {}, PriceTypeOptimal20: {},
	PriceTypeIOC: {}, PriceTypeFOK: {},
	PriceTypeOpponentIOC: {}, PriceTypeOptimal5IOC: {}, PriceTypeOptimal10IOC: {}, PriceTypeOptimal20IOC: {},
	PriceTypeOpponentFOK: {}, PriceTypeOptimal5FOK: {}, PriceTypeOptimal10FOK: {}, PriceTypeOptimal20FOK: {},
}

func (p OrderPriceType) Valid() bool {
	_, ok := orderPriceTypes[p]
	return ok
}

// PriceRequired reports whether an order of this pricing mode must carry a
// literal price. Opponent and optimal_N variants price off the book.
func (p OrderPriceType) PriceRequired() bool {
	return p == PriceTypeLimit || p == PriceTypePostOnly
}

// OrderSource reports which surface created an order.
type OrderSource string

const (
	SourceSystem     OrderSource = "system"
	SourceWeb        OrderSource = "web"
	SourceAPI        OrderSource = "api"
	SourceM          OrderSource = "m"
	SourceRisk       OrderSource = "risk"
	SourceSettlement OrderSource = "settlement"
	SourceIOS        OrderSource = "ios"
	SourceAndroid    OrderSource = "android"
	SourceWindows    OrderSource = "windows"
	SourceMac        OrderSource = "mac"
	SourceTrigger    OrderSource = "trigger"
	SourceTPSL       OrderSource = "tpsl"
)

// KlinePeriod is a candle interval accepted by the kline endpoints.
type KlinePeriod string

const (
	Period1Min  KlinePeriod = "1min"
	Period5Min  KlinePeriod = "5min"
	Period15Min KlinePeriod = "15min"
	Period30Min KlinePeriod = "30min"
	Period60Min KlinePeriod = "60min"
	Period4Hour KlinePeriod = "4hour"
	Period1Day  KlinePeriod = "1day"
	Period1Week KlinePeriod = "1week"
	Period1Mon  KlinePeriod = "1mon"
)

func (p KlinePeriod) Valid() bool {
	switch p {
	case Period1Min, Period5Min, Period15Min, Period30Min, Period60Min,
		Period4Hour, Period1Day, Period1Week, Period1Mon:
		return true
	}
	return false
}

// OrderStatus is the exchange-side order state observed via order info polls.
// Statuses 1 and 2 are both "submitting" and are treated as equivalent.
type OrderStatus int

const (
	StatusSubmitting       OrderStatus = 1
	StatusSubmittingQueued OrderStatus = 2
	StatusSubmitted        OrderStatus = 3
	StatusPartialFilled    OrderStatus = 4
	StatusPartialCancelled OrderStatus = 5
	StatusFilled           OrderStatus = 6
	StatusCancelled        OrderStatus = 7
	StatusCancelling       OrderStatus = 11
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusSubmitting, StatusSubmittingQueued, StatusSubmitted,
		StatusPartialFilled, StatusPartialCancelled, StatusFilled,
		StatusCancelled, StatusCancelling:
		return true
	}
	return false
}

// Terminal reports whether the status can no longer change. Non-terminal
// statuses must be re-polled.
func (s OrderStatus) Terminal() bool {
	return s == StatusFilled || s == StatusCancelled
}
