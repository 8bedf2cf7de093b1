package models

// ProjectionRequest is the calculator form. Automatic mode uses the investment
// fields, manual mode uses CashFlows.
type ProjectionRequest struct {
	Mode              string    `json:"mode" binding:"required,oneof=automatic manual"`
	InitialInvestment float64   `json:"initial_investment,omitempty"`
	FirstReturn       float64   `json:"first_return,omitempty"`
	Periods           int       `json:"periods,omitempty"`
	GrowthRate        float64   `json:"growth_rate,omitempty"`
	CashFlows         []float64 `json:"cash_flows,omitempty"`
}

// SolverOptions overrides the server's solver defaults field by field.
type SolverOptions struct {
	InitialGuess  *float64 `json:"initial_guess,omitempty"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
	Step          *float64 `json:"step,omitempty"`
	RederiveEvery *int     `json:"rederive_every,omitempty"`
}

// IRRRequest represents the request body for solving one projection
type IRRRequest struct {
	Projection ProjectionRequest `json:"projection" binding:"required"`
	Solver     *SolverOptions    `json:"solver,omitempty"`
}

// NPVRequest evaluates a cash flow at a single rate
type NPVRequest struct {
	CashFlows []float64 `json:"cash_flows" binding:"required,min=1"`
	Rate      *float64  `json:"rate" binding:"required"`
}

// CompareRequest solves several named projections with the same solver settings
type CompareRequest struct {
	Scenarios []ScenarioRequest `json:"scenarios" binding:"required,min=1,dive"`
	Solver    *SolverOptions    `json:"solver,omitempty"`
}

// ScenarioRequest is one named projection in a comparison
type ScenarioRequest struct {
	Name       string            `json:"name" binding:"required"`
	Projection ProjectionRequest `json:"projection" binding:"required"`
}

// SailorRequest configures a simulation batch. Unset fields use server defaults.
type SailorRequest struct {
	StartPosition *int     `json:"start_position,omitempty"`
	TowardsEdge   *float64 `json:"towards_edge,omitempty"`
	Simulations   *int     `json:"simulations,omitempty"`
	MaxSteps      *int     `json:"max_steps,omitempty"`
	Seed          *uint64  `json:"seed,omitempty"`
	IncludeRuns   bool     `json:"include_runs,omitempty"`
}

// LindyRequest is the query for GET /api/v1/sailor/:id/lindy
type LindyRequest struct {
	Barrier int `form:"barrier" binding:"required,min=1"`
}
