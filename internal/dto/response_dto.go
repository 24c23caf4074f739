package dto

// Every API response is a {success, ...} envelope. Failures carry a message
// and nothing else; successes embed their payload beside the flag.

type ErrorResponse struct {
	Success bool   `json:"success"` // always false
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TestListResponse struct {
	Success bool              `json:"success"`
	Tests   []TestResponseDTO `json:"tests"`
}

type TestResponse struct {
	Success bool            `json:"success"`
	Test    TestResponseDTO `json:"test"`
	Message string          `json:"message,omitempty"`
}

type ResultResponse struct {
	Success bool              `json:"success"`
	Result  ResultResponseDTO `json:"result"`
	Message string            `json:"message,omitempty"`
}

type TestResultsResponse struct {
	Success bool                `json:"success"`
	Results []ResultResponseDTO `json:"results"`
	Stats   StatsDTO            `json:"stats"`
}

type HistoryResponse struct {
	Success bool                       `json:"success"`
	History map[string]HistoryEntryDTO `json:"history"`
}

type HealthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Database string `json:"database"` // "connected" or "disconnected"
}
