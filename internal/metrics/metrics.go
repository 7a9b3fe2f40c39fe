// Package metrics exposes the fleet's Prometheus collectors. The teacher's
// own /metrics endpoint hand-rolled a JSON snapshot; this repo wires the
// client_golang registry the teacher already imports but never exercised.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fleetbot_sessions_connected",
		Help: "Number of sessions with an open transport socket.",
	})

	ReconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetbot_reconnects_total",
		Help: "Total reconnect attempts across all sessions.",
	})

	TickLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fleetbot_tick_latency_seconds",
		Help:    "Elapsed wall time handling one NewTick packet, from receipt to Move ack.",
		Buckets: prometheus.DefBuckets,
	})

	BytesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetbot_bytes_sent_total",
		Help: "Total bytes written to session sockets.",
	})

	BytesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetbot_bytes_received_total",
		Help: "Total bytes read from session sockets.",
	})

	UnknownPacketIDs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleetbot_unknown_packet_ids_total",
		Help: "Inbound frames whose packet id had no typed decoder.",
	})
)

// Serve starts the /metrics HTTP endpoint and blocks until ctx is canceled.
// Callers typically run this in its own goroutine; a zero port disables it
// entirely (checked by the caller before invoking Serve).
func Serve(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
