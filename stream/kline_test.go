package stream

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"swapflow/config"
	"swapflow/models"
)

func gzipFrame(t *testing.T, payload string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(payload)); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestInflate(t *testing.T) {
	payload := `{"ping":1724976000}`
	out, err := inflate(gzipFrame(t, payload))
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if string(out) != payload {
		t.Errorf("unexpected payload: %s", out)
	}

	// Uncompressed frames pass through untouched.
	out, err = inflate([]byte(payload))
	if err != nil {
		t.Fatalf("inflate passthrough: %v", err)
	}
	if string(out) != payload {
		t.Errorf("unexpected passthrough: %s", out)
	}
}

func TestSubTopic(t *testing.T) {
	if got := SubTopic("BTC-USDT", models.Period1Min); got != "market.BTC-USDT.kline.1min" {
		t.Errorf("unexpected topic: %s", got)
	}
}

func streamConfig(url string) *config.Config {
	return &config.Config{
		Stream: config.StreamConfig{
			Enabled:     true,
			URL:         url,
			ReadTimeout: 5 * time.Second,
		},
	}
}

func TestSubscribeValidation(t *testing.T) {
	cfg := streamConfig("ws://example.invalid")

	if _, err := Subscribe(context.Background(), cfg, "", models.Period1Min); err == nil {
		t.Error("empty contract code should fail")
	}
	if _, err := Subscribe(context.Background(), cfg, "BTC-USDT", "2min"); err == nil {
		t.Error("unknown period should fail")
	}

	cfg.Stream.Enabled = false
	if _, err := Subscribe(context.Background(), cfg, "BTC-USDT", models.Period1Min); err == nil {
		t.Error("disabled stream should fail")
	}
}

func TestStreamDeliversTicksAndPongs(t *testing.T) {
	upgrader := websocket.Upgrader{}
	gotPong := make(chan int64, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		var sub map[string]string
		if err := conn.ReadJSON(&sub); err != nil {
			t.Errorf("read sub: %v", err)
			return
		}
		if sub["sub"] != "market.BTC-USDT.kline.1min" {
			t.Errorf("unexpected sub: %v", sub)
		}

		frames := []string{
			`{"id":"x","status":"ok","subbed":"market.BTC-USDT.kline.1min","ts":1}`,
			`{"ping":1724976000}`,
			`{"ch":"market.BTC-USDT.kline.1min","ts":1724976001000,"tick":{"id":1724976000,"open":"50000","close":"50100.5","high":"50200","low":"49900","amount":"1.5","vol":"1500","count":12}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.BinaryMessage, gzipFrame(t, f)); err != nil {
				return
			}
		}

		var pong map[string]int64
		if err := conn.ReadJSON(&pong); err != nil {
			return
		}
		gotPong <- pong["pong"]

		// Hold the connection open until the client hangs up.
		conn.ReadMessage()
	}))
	defer srv.Close()

	cfg := streamConfig("ws" + strings.TrimPrefix(srv.URL, "http"))
	s, err := Subscribe(context.Background(), cfg, "BTC-USDT", models.Period1Min)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer s.Stop()

	select {
	case tick := <-s.Ticks():
		if tick.Channel != "market.BTC-USDT.kline.1min" {
			t.Errorf("unexpected channel: %s", tick.Channel)
		}
		if tick.Kline.Close.String() != "50100.5" {
			t.Errorf("unexpected close: %s", tick.Kline.Close)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no tick delivered")
	}

	select {
	case ts := <-gotPong:
		if ts != 1724976000 {
			t.Errorf("pong must echo the ping timestamp, got %d", ts)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no pong received")
	}
}

func TestStreamServerError(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var sub map[string]string
		conn.ReadJSON(&sub)
		payload, _ := json.Marshal(map[string]string{
			"status":  "error",
			"err-msg": "invalid topic",
		})
		conn.WriteMessage(websocket.BinaryMessage, gzipFrame(t, string(payload)))
		conn.ReadMessage()
	}))
	defer srv.Close()

	cfg := streamConfig("ws" + strings.TrimPrefix(srv.URL, "http"))
	s, err := Subscribe(context.Background(), cfg, "BTC-USDT", models.Period1Min)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer s.Stop()

	select {
	case _, ok := <-s.Ticks():
		if ok {
			t.Fatal("expected channel close, got tick")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close")
	}

	var merr *models.MalformedResponse
	if !errors.As(s.Err(), &merr) {
		t.Fatalf("expected MalformedResponse, got %v", s.Err())
	}
}
