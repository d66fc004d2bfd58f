package probe

import "time"

type Tier string

const (
	TierGood          Tier = "good"
	TierFair          Tier = "fair"
	TierPoor          Tier = "poor"
	TierUnreachable   Tier = "unreachable"
	TierUnknownFormat Tier = "unknown-format"
)

const (
	DefaultTimeout = 2500 * time.Millisecond
	DefaultPort    = "443"

	goodBelow = 120 * time.Millisecond
	fairBelow = 250 * time.Millisecond
)

// Target - one catalog entry to probe
type Target struct {
	ID   string
	Name string
	URI  string
}

// Result - outcome of probing one target. Latency is set only for
// good, fair and poor tiers.
type Result struct {
	ID      string
	Name    string
	Tier    Tier
	Latency *time.Duration
}

// Reachable reports whether a connection was established.
func (r Result) Reachable() bool {
	return r.Latency != nil
}

// LatencyMS returns the measured latency in whole milliseconds, or -1.
func (r Result) LatencyMS() int64 {
	if r.Latency == nil {
		return -1
	}
	return r.Latency.Milliseconds()
}
