package httpclient

import (
	"net/http"
	"time"

	"logistics-tracker/internal/core/logger"
	"logistics-tracker/internal/core/metrics"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound request and records its latency.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Metrics receives one observation per request. May be nil.
	Metrics *metrics.Metrics
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		lrt.Metrics.ObserveBackendRequest(req.Method, 0, duration)
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	lrt.Metrics.ObserveBackendRequest(req.Method, resp.StatusCode, duration)
	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging and metrics middleware.
func NewClient(timeout time.Duration, m *metrics.Metrics) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
			Metrics: m,
		},
		Timeout: timeout,
	}
}
