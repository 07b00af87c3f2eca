package models

import "testing"

func TestDirectionOffsetValidity(t *testing.T) {
	for _, d := range []Direction{DirectionBuy, DirectionSell} {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	for _, d := range []Direction{"", "hold", "long"} {
		if d.Valid() {
			t.Errorf("%q should be invalid", d)
		}
	}

	for _, o := range []Offset{OffsetOpen, OffsetClose} {
		if !o.Valid() {
			t.Errorf("%s should be valid", o)
		}
	}
	if Offset("reduce").Valid() {
		t.Error("reduce should be invalid")
	}
}

func TestOrderPriceTypePriceRequired(t *testing.T) {
	required := []OrderPriceType{PriceTypeLimit, PriceTypePostOnly}
	for _, p := range required {
		if !p.PriceRequired() {
			t.Errorf("%s must require a price", p)
		}
	}

	bookPriced := []OrderPriceType{
		PriceTypeOpponent, PriceTypeOptimal5, PriceTypeOptimal10, PriceTypeOptimal20,
		PriceTypeIOC, PriceTypeFOK,
		PriceTypeOpponentIOC, PriceTypeOptimal5IOC, PriceTypeOptimal10IOC, PriceTypeOptimal20IOC,
		PriceTypeOpponentFOK, PriceTypeOptimal5FOK, PriceTypeOptimal10FOK, PriceTypeOptimal20FOK,
	}
	for _, p := range bookPriced {
		if !p.Valid() {
			t.Errorf("%s should be a known type", p)
		}
		if p.PriceRequired() {
			t.Errorf("%s prices off the book and must not require a price", p)
		}
	}

	if OrderPriceType("market").Valid() {
		t.Error("market is not a linear-swap price type")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := []OrderStatus{StatusFilled, StatusCancelled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("status %d should be terminal", s)
		}
	}

	transient := []OrderStatus{
		StatusSubmitting, StatusSubmittingQueued, StatusSubmitted,
		StatusPartialFilled, StatusPartialCancelled, StatusCancelling,
	}
	for _, s := range transient {
		if !s.Valid() {
			t.Errorf("status %d should be known", s)
		}
		if s.Terminal() {
			t.Errorf("status %d should be transient", s)
		}
	}

	if OrderStatus(8).Valid() {
		t.Error("status 8 is not defined")
	}
}

func TestKlinePeriodValidity(t *testing.T) {
	for _, p := range []KlinePeriod{
		Period1Min, Period5Min, Period15Min, Period30Min, Period60Min,
		Period4Hour, Period1Day, Period1Week, Period1Mon,
	} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if KlinePeriod("2min").Valid() {
		t.Error("2min is not a supported period")
	}
}

func TestCancelRequestIDs(t *testing.T) {
	req := CancelRequest{
		ContractCode:   "BTC-USDT",
		OrderIDs:       []string{"1", "2"},
		ClientOrderIDs: []string{"c1"},
	}
	ids := req.RequestedIDs()
	if len(ids) != 3 || ids[0] != "1" || ids[2] != "c1" {
		t.Errorf("unexpected ids: %v", ids)
	}

	var res CancelResult
	if got := res.SuccessIDs(); got != nil {
		t.Errorf("empty successes should yield nil, got %v", got)
	}
	res.Successes = "1,2"
	if got := res.SuccessIDs(); len(got) != 2 {
		t.Errorf("unexpected successes: %v", got)
	}
}
