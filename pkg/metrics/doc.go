/*
Package metrics exposes Prometheus metrics for the Burrow client.

The call adapter records every unary call and stream through the package-level
collectors:

  - burrow_client_calls_total{method, code}
  - burrow_client_call_duration_seconds{method}
  - burrow_client_active_streams
  - burrow_client_streams_total{method, terminal}
  - burrow_client_stream_events_total{method}

Metrics register on the default registry at import time. Embedders that serve
metrics mount Handler() on an HTTP mux:

	http.Handle("/metrics", metrics.Handler())

The library itself never opens a listener; whether metrics are served is the
embedder's decision.
*/
package metrics
