// Package stream maintains a live kline subscription over the exchange
// websocket. Frames arrive gzip-compressed; the exchange sends {"ping": ts}
// heartbeats and drops the connection when the matching pong is late.
package stream

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"swapflow/config"
	"swapflow/logger"
	"swapflow/models"
)

const defaultReadTimeout = 30 * time.Second

// KlineTick is one live candle update.
type KlineTick struct {
	Channel string
	Ts      int64
	Kline   models.Kline
}

// frame is the union of every message shape the kline channel delivers.
type frame struct {
	Ping   int64         `json:"ping"`
	Ch     string        `json:"ch"`
	Ts     int64         `json:"ts"`
	Tick   *models.Kline `json:"tick"`
	Subbed string        `json:"subbed"`
	Status string        `json:"status"`
	ErrMsg string        `json:"err-msg"`
}

// KlineStream is a single-channel kline subscription. Ticks() delivers
// updates until Stop is called or the connection dies; Err() reports why the
// stream ended.
type KlineStream struct {
	conn        *websocket.Conn
	ticks       chan KlineTick
	readTimeout time.Duration
	log         *logger.Log

	stopOnce sync.Once
	stopped  chan struct{}

	mu  sync.Mutex
	err error
}

// Subscribe dials the stream endpoint and subscribes one contract's kline
// channel.
func Subscribe(ctx context.Context, cfg *config.Config, contractCode string, period models.KlinePeriod) (*KlineStream, error) {
	if !cfg.Stream.Enabled {
		return nil, &models.ValidationError{Field: "stream.enabled", Reason: "streaming is disabled in config"}
	}
	if contractCode == "" {
		return nil, &models.ValidationError{Field: "contract_code", Reason: "required"}
	}
	if !period.Valid() {
		return nil, &models.ValidationError{Field: "period", Reason: "unknown kline period"}
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, cfg.Stream.URL, nil)
	if err != nil {
		return nil, &models.TransportError{Op: "dial " + cfg.Stream.URL, Err: err}
	}

	sub := map[string]string{
		"sub": SubTopic(contractCode, period),
		"id":  uuid.New().String(),
	}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		return nil, &models.TransportError{Op: "subscribe " + sub["sub"], Err: err}
	}

	readTimeout := cfg.Stream.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	buffer := cfg.Stream.ReadMessageBuffer
	if buffer <= 0 {
		buffer = 64
	}

	s := &KlineStream{
		conn:        conn,
		ticks:       make(chan KlineTick, buffer),
		readTimeout: readTimeout,
		log:         logger.GetLogger(),
		stopped:     make(chan struct{}),
	}
	go s.readLoop(sub["sub"])
	return s, nil
}

// SubTopic builds the exchange channel name for a contract's klines.
func SubTopic(contractCode string, period models.KlinePeriod) string {
	return fmt.Sprintf("market.%s.kline.%s", contractCode, period)
}

// Ticks delivers live candle updates. The channel closes when the stream
// ends; consult Err afterwards.
func (s *KlineStream) Ticks() <-chan KlineTick { return s.ticks }

// Err returns the reason the stream ended, nil after a clean Stop.
func (s *KlineStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stop closes the connection and ends the read loop.
func (s *KlineStream) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopped)
		s.conn.Close()
	})
}

func (s *KlineStream) readLoop(topic string) {
	defer close(s.ticks)
	log := s.log.WithComponent("kline_stream").WithFields(logger.Fields{"topic": topic})

	for {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
			s.fail(&models.TransportError{Op: "set read deadline", Err: err}, log)
			return
		}
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.stopped:
				return
			default:
			}
			s.fail(&models.TransportError{Op: "read " + topic, Err: err}, log)
			return
		}
		logger.IncrementStreamRead(len(raw))

		payload, err := inflate(raw)
		if err != nil {
			s.fail(&models.MalformedResponse{Reason: "stream frame: " + err.Error()}, log)
			return
		}

		var msg frame
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.fail(&models.MalformedResponse{Reason: "stream frame: " + err.Error()}, log)
			return
		}

		switch {
		case msg.Ping != 0:
			if err := s.conn.WriteJSON(map[string]int64{"pong": msg.Ping}); err != nil {
				s.fail(&models.TransportError{Op: "pong", Err: err}, log)
				return
			}
		case msg.Status == "error":
			s.fail(&models.MalformedResponse{Reason: "stream error: " + msg.ErrMsg}, log)
			return
		case msg.Subbed != "":
			log.Info("subscription confirmed")
		case msg.Tick != nil:
			tick := KlineTick{Channel: msg.Ch, Ts: msg.Ts, Kline: *msg.Tick}
			select {
			case s.ticks <- tick:
			case <-s.stopped:
				return
			}
		}
	}
}

func (s *KlineStream) fail(err error, log *logger.Entry) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	log.WithError(err).Error("kline stream ended")
	s.conn.Close()
}

// inflate gunzips one websocket frame. Frames that are not gzip (the server
// sends pongs and some control messages uncompressed) pass through as-is.
func inflate(raw []byte) ([]byte, error) {
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		return raw, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
