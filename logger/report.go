package logger

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"
)

type endpointStat struct {
	requests int64
	bytes    int64
}

var (
	errorsGateway   int64
	errorsStream    int64
	warnsGateway    int64
	warnsStream     int64
	requestsSent    int64
	ordersPlaced    int64
	ordersCancelled int64
	streamReads     int64
	endpoints       sync.Map // map[string]*endpointStat
)

func recordWarn(component string) {
	if strings.Contains(component, "stream") {
		atomic.AddInt64(&warnsStream, 1)
	} else if strings.Contains(component, "gateway") {
		atomic.AddInt64(&warnsGateway, 1)
	}
}

func recordError(component string) {
	if strings.Contains(component, "stream") {
		atomic.AddInt64(&errorsStream, 1)
	} else if strings.Contains(component, "gateway") {
		atomic.AddInt64(&errorsGateway, 1)
	}
}

// IncrementRequest records one outbound REST call against its endpoint path.
func IncrementRequest(path string, size int) {
	atomic.AddInt64(&requestsSent, 1)
	recordEndpoint(path, size)
}

func IncrementOrderPlaced() {
	atomic.AddInt64(&ordersPlaced, 1)
}

func IncrementOrderCancelled() {
	atomic.AddInt64(&ordersCancelled, 1)
}

// IncrementStreamRead records one inflated websocket frame.
func IncrementStreamRead(size int) {
	atomic.AddInt64(&streamReads, 1)
	recordEndpoint("stream_ws", size)
}

func recordEndpoint(name string, size int) {
	v, _ := endpoints.LoadOrStore(name, &endpointStat{})
	es := v.(*endpointStat)
	atomic.AddInt64(&es.requests, 1)
	atomic.AddInt64(&es.bytes, int64(size))
}

func startReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(log)
			}
		}
	}()
}

// StartReport begins periodic logging of system and endpoint statistics.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	startReport(ctx, log, interval)
}

func logReport(log *Log) {
	cpuPercent, _ := cpu.Percent(0, false)
	memStats, _ := mem.VirtualMemory()
	netStats, _ := gnet.IOCounters(false)
	endpointData := map[string]map[string]int64{}
	endpoints.Range(func(k, v any) bool {
		name := k.(string)
		es := v.(*endpointStat)
		endpointData[name] = map[string]int64{
			"requests": atomic.LoadInt64(&es.requests),
			"bytes":    atomic.LoadInt64(&es.bytes),
		}
		return true
	})

	cpuPct := 0.0
	if len(cpuPercent) > 0 {
		cpuPct = cpuPercent[0]
	}

	bytesSent := uint64(0)
	bytesRecv := uint64(0)
	if len(netStats) > 0 {
		bytesSent = netStats[0].BytesSent
		bytesRecv = netStats[0].BytesRecv
	}

	fields := Fields{
		"errors_gateway":   atomic.LoadInt64(&errorsGateway),
		"errors_stream":    atomic.LoadInt64(&errorsStream),
		"warns_gateway":    atomic.LoadInt64(&warnsGateway),
		"warns_stream":     atomic.LoadInt64(&warnsStream),
		"requests_sent":    atomic.LoadInt64(&requestsSent),
		"orders_placed":    atomic.LoadInt64(&ordersPlaced),
		"orders_cancelled": atomic.LoadInt64(&ordersCancelled),
		"stream_reads":     atomic.LoadInt64(&streamReads),
		"goroutines":       runtime.NumGoroutine(),
		"cpu_percent":      cpuPct,
		"memory_mb":        int64(memStats.Used) / 1024 / 1024,
		"endpoints":        endpointData,
		"net_bytes_sent":   int64(bytesSent),
		"net_bytes_recv":   int64(bytesRecv),
	}

	log.WithComponent("report").WithFields(fields).Info("runtime report")
}
