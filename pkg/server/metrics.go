// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
)

const (
	// histogram covers one hour of microseconds at 3 significant digits
	latencyHistogramMin     = 1
	latencyHistogramMax     = int64(time.Hour / time.Microsecond)
	latencyHistogramSigFigs = 3
)

// LatencyObserver samples per-request handler latency into a rolling
// percentile estimator. One writer records per finished request; percentile
// gauges read concurrently under the read lock.
type LatencyObserver struct {
	mu        sync.RWMutex
	histogram *hdrhistogram.Histogram
}

func NewLatencyObserver(registerer prometheus.Registerer) *LatencyObserver {
	o := &LatencyObserver{
		histogram: hdrhistogram.New(latencyHistogramMin, latencyHistogramMax, latencyHistogramSigFigs),
	}

	registerer.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "grpc_server_latency_p99_milliseconds",
			Help: "99th percentile latency of grpc requests in milliseconds",
		}, func() float64 { return o.PercentileMs(99) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "grpc_server_latency_p95_milliseconds",
			Help: "95th percentile latency of grpc requests in milliseconds",
		}, func() float64 { return o.PercentileMs(95) }),
	)

	return o
}

// Record adds one request duration sample.
func (o *LatencyObserver) Record(d time.Duration) {
	o.mu.Lock()
	_ = o.histogram.RecordValue(d.Microseconds())
	o.mu.Unlock()
}

// PercentileMs computes the given latency percentile in milliseconds.
func (o *LatencyObserver) PercentileMs(percentile float64) float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return float64(o.histogram.ValueAtQuantile(percentile)) / 1000
}

func (o *LatencyObserver) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		o.Record(time.Since(start))

		return resp, err
	}
}

func (o *LatencyObserver) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, stream)
		o.Record(time.Since(start))

		return err
	}
}
