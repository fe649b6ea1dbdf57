package dto

// ImportResultResponse mirrors one import attempt.
type ImportResultResponse struct {
	Success       bool     `json:"success"`
	TotalRows     int      `json:"total_rows"`
	ProcessedRows int      `json:"processed_rows"`
	Errors        []string `json:"errors"`
}

// ImportResponse bundles the result with the tickets it created.
type ImportResponse struct {
	Result  ImportResultResponse `json:"result"`
	Tickets []TicketSummary      `json:"tickets"`
}
