package handlers

import (
	"net/http"

	"blog-apps/internal/api/models"
	"blog-apps/internal/irr"
	"blog-apps/internal/sailor"

	"github.com/gin-gonic/gin"
)

// AppsHandler describes the calculator apps and their parameters
type AppsHandler struct {
	apps []models.AppInfo
}

// NewAppsHandler builds the catalogue from the configured defaults
func NewAppsHandler(solver irr.Config, irrLimits IRRLimits, params sailor.Params, sailorLimits sailor.Limits) *AppsHandler {
	return &AppsHandler{apps: []models.AppInfo{
		{
			Name:        "irr-calculator",
			Title:       "IRR Calculator",
			Description: "Simulate the IRR of your investment.",
			Endpoint:    "/api/v1/irr",
			Parameters: []models.ParameterInfo{
				{Name: "mode", Type: "string", Description: "Projection method: 'automatic' or 'manual'", Default: "automatic"},
				{Name: "initial_investment", Type: "float", Description: "Amount invested up front (automatic mode)"},
				{Name: "first_return", Type: "float", Description: "Return of the first period (automatic mode)"},
				{Name: "periods", Type: "int", Description: "Number of periods with returns (automatic mode)"},
				{Name: "growth_rate", Type: "float", Description: "Per-period growth of the returns, e.g. 0.05 (automatic mode)"},
				{Name: "cash_flows", Type: "[]float", Description: "Cash flow per period, initial investment first and negative (manual mode)"},
				{Name: "solver.initial_guess", Type: "float", Description: "Rate the search starts from", Default: solver.InitialGuess},
				{Name: "solver.max_iterations", Type: "int", Description: "Steps before the search gives up, up to the server limit", Default: solver.MaxIterations},
				{Name: "max_iterations_limit", Type: "int", Description: "Server limit on solver.max_iterations", Default: irrLimits.MaxIterations},
				{Name: "max_cash_flows", Type: "int", Description: "Server limit on cash flows per projection", Default: irrLimits.MaxCashFlows},
				{Name: "solver.tolerance", Type: "float", Description: "Signed NPV error accepted as converged", Default: solver.Tolerance},
				{Name: "solver.step", Type: "float", Description: "Rate change per step (0 = tolerance)", Default: solver.Step},
				{Name: "solver.rederive_every", Type: "int", Description: "Every N steps, turn around if |NPV| grew (0 = never)", Default: solver.RederiveEvery},
			},
		},
		{
			Name:        "drunken-sailor",
			Title:       "Drunken Sailor Simulator",
			Description: "Simulate the drunken sailor problem.",
			Endpoint:    "/api/v1/sailor",
			Parameters: []models.ParameterInfo{
				{Name: "start_position", Type: "int", Description: "Steps away from the edge (n)", Default: params.StartPosition},
				{Name: "towards_edge", Type: "float", Description: "Probability of stepping towards the edge, between 0 and 1", Default: params.TowardsEdge},
				{Name: "simulations", Type: "int", Description: "Number of simulations, between 1 and the server limit", Default: params.Simulations},
				{Name: "max_steps", Type: "int", Description: "Steps after which a sailor is considered safe, up to the server limit", Default: params.MaxSteps},
				{Name: "max_simulations", Type: "int", Description: "Server limit on simulations", Default: sailorLimits.MaxSimulations},
				{Name: "max_steps_limit", Type: "int", Description: "Server limit on max_steps", Default: sailorLimits.MaxSteps},
				{Name: "seed", Type: "int", Description: "Random seed; omit for a fresh one"},
			},
		},
	}}
}

// ListApps handles GET /api/v1/apps
func (h *AppsHandler) ListApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apps": h.apps})
}
