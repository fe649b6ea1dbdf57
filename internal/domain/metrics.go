package domain

// Metrics aggregates dashboard figures over the ticket collection.
type Metrics struct {
	TotalTickets          int
	OpenTickets           int
	ResolvedToday         int
	AverageResolutionTime float64
	SLACompliance         float64
	CriticalTickets       int
}
