package call

// AgentStats summarizes the calls an agent took in a reporting window.
// AvgDurationMinutes covers only calls with both a start and an end and stays
// nil when there are none.
type AgentStats struct {
	TotalCalls         int
	AvgDurationMinutes *float64
	ResolvedCalls      int
}
