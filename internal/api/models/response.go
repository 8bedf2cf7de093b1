package models

// IRRResponse represents the outcome of one solve
type IRRResponse struct {
	Status     string    `json:"status"` // "converged" or "diverged"
	Rate       *float64  `json:"rate,omitempty"`
	Formatted  string    `json:"formatted,omitempty"` // e.g. "12.34%"
	Message    string    `json:"message"`
	Iterations int       `json:"iterations"`
	NPV        *float64  `json:"npv,omitempty"` // NPV at the last guess, omitted when not finite
	CashFlows  []float64 `json:"cash_flows"`
}

// NPVResponse carries a single NPV evaluation
type NPVResponse struct {
	NPV float64 `json:"npv"`
}

// CompareResponse represents the ranked comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one scenario. Rank is 0 for scenarios
// without a rate.
type ComparisonResult struct {
	Name   string       `json:"name"`
	Rank   int          `json:"rank"`
	Result *IRRResponse `json:"result,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// SailorResponse represents the response from a simulation batch
type SailorResponse struct {
	ID      string         `json:"id,omitempty"`
	Seed    uint64         `json:"seed"`
	Params  SailorParams   `json:"params"`
	Summary SailorSummary  `json:"summary"`
	Runs    []SailorRun    `json:"runs,omitempty"`
	Lindy   *LindyResponse `json:"lindy,omitempty"`
}

type SailorParams struct {
	StartPosition int     `json:"start_position"`
	TowardsEdge   float64 `json:"towards_edge"`
	Simulations   int     `json:"simulations"`
	MaxSteps      int     `json:"max_steps"`
}

// SailorSummary contains aggregated simulation results
type SailorSummary struct {
	Deaths             int     `json:"deaths"`
	PercentageOfDeaths string  `json:"percentage_of_deaths"` // two decimals, e.g. "96.40"
	TotalIterations    int     `json:"total_iterations"`
	AverageIterations  float64 `json:"average_iterations"`
}

// SailorRun represents one walk in the ledger
type SailorRun struct {
	Index         int  `json:"index"`
	FinalPosition int  `json:"final_position"`
	Steps         int  `json:"steps"`
	Died          bool `json:"died"`
}

// SailorRunsResponse is the cached ledger of a simulation
type SailorRunsResponse struct {
	ID   string      `json:"id"`
	Runs []SailorRun `json:"runs"`
}

// LindyResponse answers how many long walks still died
type LindyResponse struct {
	ID                 string `json:"id,omitempty"`
	Barrier            int    `json:"barrier"`
	Survivors          int    `json:"survivors"`
	Deaths             int    `json:"deaths"`
	PercentageOfDeaths string `json:"percentage_of_deaths"`
}

// AppInfo represents one calculator app
type AppInfo struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Endpoint    string          `json:"endpoint"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes an app parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string", "[]float"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
