package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const statsTimeout = 2 * time.Second

// RequestMetric is the payload the stats service ingests for every request.
type RequestMetric struct {
	ServiceName string `json:"service_name"`
	Endpoint    string `json:"endpoint"`
	Method      string `json:"method"`
	StatusCode  int    `json:"status_code"`
	LatencyMS   int64  `json:"latency_ms"`
}

// StatsReporter forwards per-request metrics to the stats service. Delivery is
// best effort: failures are logged at debug level and never reach the client.
type StatsReporter struct {
	serviceName string
	endpoint    string
	client      *http.Client
}

// NewStatsReporter returns nil when baseURL is empty, which disables reporting.
func NewStatsReporter(serviceName, baseURL string) *StatsReporter {
	if baseURL == "" {
		return nil
	}
	return &StatsReporter{
		serviceName: serviceName,
		endpoint:    baseURL + "/metrics",
		client:      &http.Client{Timeout: statsTimeout},
	}
}

func (s *StatsReporter) Middleware(next http.Handler) http.Handler {
	if s == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(sr, r)

		metric := RequestMetric{
			ServiceName: s.serviceName,
			Endpoint:    r.URL.Path,
			Method:      r.Method,
			StatusCode:  sr.status(),
			LatencyMS:   time.Since(start).Milliseconds(),
		}
		go s.send(metric)
	})
}

func (s *StatsReporter) send(metric RequestMetric) {
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	if err := s.post(ctx, metric); err != nil {
		log.Debug().Err(err).Str("endpoint", metric.Endpoint).Msg("Failed to forward request metric")
	}
}

func (s *StatsReporter) post(ctx context.Context, metric RequestMetric) error {
	body, err := json.Marshal(metric)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("stats service returned %d", resp.StatusCode)
	}
	return nil
}
