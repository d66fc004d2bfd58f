package probe

import (
	"context"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"azadinet-bot/internal/metrics"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	dialer      Dialer
	timeout     time.Duration
	concurrency int
	now         func() time.Time
	logger      *slog.Logger
}

func NewService(dialer Dialer, timeout time.Duration, concurrency int, logger *slog.Logger) *Service {
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		dialer:      dialer,
		timeout:     timeout,
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
	}
}

// ParseEndpoint extracts host and port from a config uri of the form
// scheme://[user@]host[:port]/...?query. Port 443 is assumed when omitted;
// a port outside 1-65535 makes the uri unparseable.
func ParseEndpoint(uri string) (host, port string, ok bool) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", false
	}

	host = u.Hostname()
	if host == "" {
		return "", "", false
	}

	port = u.Port()
	if port == "" || port == "0" {
		return host, DefaultPort, true
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return "", "", false
	}
	return host, port, true
}

// Classify maps a connect latency, truncated to whole milliseconds, to a tier.
func Classify(latency time.Duration) Tier {
	latency = latency.Truncate(time.Millisecond)
	switch {
	case latency < goodBelow:
		return TierGood
	case latency < fairBelow:
		return TierFair
	default:
		return TierPoor
	}
}

// Probe makes a single TCP connect attempt to the target endpoint.
func (s *Service) Probe(ctx context.Context, target Target) Result {
	result := Result{ID: target.ID, Name: target.Name}

	host, port, ok := ParseEndpoint(target.URI)
	if !ok {
		result.Tier = TierUnknownFormat
		metrics.ProbeResultsTotal.WithLabelValues(string(result.Tier)).Inc()
		return result
	}

	dialCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := s.now()
	conn, err := s.dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		s.logger.Debug("Probe failed",
			slog.String("config_id", target.ID),
			slog.String("host", host),
			slog.String("port", port),
			slog.Any("error", err))
		result.Tier = TierUnreachable
		metrics.ProbeResultsTotal.WithLabelValues(string(result.Tier)).Inc()
		return result
	}
	latency := s.now().Sub(started).Truncate(time.Millisecond)
	_ = conn.Close()

	result.Tier = Classify(latency)
	result.Latency = &latency
	metrics.ProbeResultsTotal.WithLabelValues(string(result.Tier)).Inc()
	return result
}

// Run probes every target and returns results in the order of targets.
func (s *Service) Run(ctx context.Context, targets []Target) []Result {
	results := make([]Result, len(targets))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, target := range targets {
		g.Go(func() error {
			results[i] = s.Probe(ctx, target)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
