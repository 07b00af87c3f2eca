package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"swapflow/config"
	"swapflow/models"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Swapflow: config.SwapflowConfig{Name: "test", Version: "0"},
		API: config.APIConfig{
			BaseURL:   baseURL,
			AccessKey: "ak",
			SecretKey: "sk",
			Timeout:   time.Second,
		},
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*HTTPGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := NewHTTP(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	return gw, srv
}

func TestCallReturnsData(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/linear-swap-api/v1/swap_cross_order" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("Signature") == "" {
			t.Error("request not signed")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		w.Write([]byte(`{"status":"ok","data":{"order_id":123,"order_id_str":"123"},"ts":1}`))
	})

	data, err := gw.Call(context.Background(), Request{
		Path:   "/linear-swap-api/v1/swap_cross_order",
		Method: http.MethodPost,
		Body:   map[string]string{"contract_code": "BTC-USDT"},
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	var out struct {
		OrderIDStr string `json:"order_id_str"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.OrderIDStr != "123" {
		t.Errorf("unexpected order id: %s", out.OrderIDStr)
	}
}

func TestCallBusinessError(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","err_code":1047,"err_msg":"Insufficient margin available."}`))
	})

	_, err := gw.Call(context.Background(), Request{
		Path:   "/linear-swap-api/v1/swap_cross_order",
		Method: http.MethodPost,
	})

	var rejected *models.OrderRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected OrderRejected, got %T: %v", err, err)
	}
	if rejected.Code != 1047 || rejected.Message != "Insufficient margin available." {
		t.Errorf("exchange error not carried verbatim: %+v", rejected)
	}
}

func TestCallHTTPFailure(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := gw.Call(context.Background(), Request{Path: "/x", Method: http.MethodGet})

	var transport *models.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}

func TestCallUndecodableEnvelope(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := gw.Call(context.Background(), Request{Path: "/x", Method: http.MethodGet})

	var transport *models.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}

func TestCallUnsignedWithoutCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("AccessKeyId") != "" {
			t.Error("unauthenticated gateway must not sign")
		}
		if r.URL.Query().Get("contract_code") != "BTC-USDT" {
			t.Errorf("query params lost: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status":"ok","data":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.API.AccessKey = ""
	cfg.API.SecretKey = ""
	gw, err := NewHTTP(cfg)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}

	query := url.Values{}
	query.Set("contract_code", "BTC-USDT")
	if _, err := gw.Call(context.Background(), Request{Path: "/x", Method: http.MethodGet, Query: query}); err != nil {
		t.Fatalf("Call: %v", err)
	}
}
