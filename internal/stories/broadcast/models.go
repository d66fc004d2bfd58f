package broadcast

// Report - outcome of one broadcast run
type Report struct {
	RunID  string
	Total  int
	Sent   int
	Failed int
}
