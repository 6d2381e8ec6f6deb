package utils

import (
	"sync"
	"time"
)

// Tracks dispatch and request metrics for one store instance
type MetricsCollector struct {
	mu            sync.RWMutex
	dispatchCount uint64
	requestCount  uint64
	errorCount    uint64

	// Maps operation name to list of latencies in nanoseconds
	operationTimes map[string][]int64

	startTime time.Time
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		operationTimes: make(map[string][]int64),
		startTime:      time.Now(),
	}
}

func (mc *MetricsCollector) IncrementDispatches() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.dispatchCount++
}

func (mc *MetricsCollector) IncrementRequests() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.requestCount++
}

func (mc *MetricsCollector) IncrementErrors() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.errorCount++
}

func (mc *MetricsCollector) AddOperationLatency(operationName string, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.operationTimes[operationName]; !exists {
		mc.operationTimes[operationName] = make([]int64, 0)
	}
	mc.operationTimes[operationName] = append(
		mc.operationTimes[operationName],
		duration.Nanoseconds(),
	)
}

// Snapshot returns current counters for logging at shutdown.
func (mc *MetricsCollector) Snapshot() (dispatches, requests, errors uint64, uptime time.Duration) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.dispatchCount, mc.requestCount, mc.errorCount, time.Since(mc.startTime)
}

// AverageLatency returns the mean latency recorded for an operation, or zero
// when the operation has never been observed.
func (mc *MetricsCollector) AverageLatency(operationName string) time.Duration {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	times := mc.operationTimes[operationName]
	if len(times) == 0 {
		return 0
	}
	var total int64
	for _, t := range times {
		total += t
	}
	return time.Duration(total / int64(len(times)))
}
