package handlers

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"blog-apps/internal/analysis"
	"blog-apps/internal/api/models"
	"blog-apps/internal/irr"
	"blog-apps/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IRRLimits bounds the work one request may ask for.
type IRRLimits struct {
	MaxIterations int
	MaxCashFlows  int
	MaxScenarios  int
}

// IRRHandler serves the IRR calculator.
type IRRHandler struct {
	solver  irr.Config
	limits  IRRLimits
	workers int
	logger  *zap.Logger
}

// NewIRRHandler creates a handler solving with the given defaults. workers bounds
// concurrent solves in a comparison.
func NewIRRHandler(solver irr.Config, limits IRRLimits, workers int, logger *zap.Logger) *IRRHandler {
	return &IRRHandler{
		solver:  solver,
		limits:  limits,
		workers: workers,
		logger:  logger,
	}
}

// SolveIRR handles POST /api/v1/irr
func (h *IRRHandler) SolveIRR(c *gin.Context) {
	var req models.IRRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cfg := mergeSolver(h.solver, req.Solver)
	if err := h.checkLimits(cfg, req.Projection); err != nil {
		writeError(c, http.StatusBadRequest, "LIMIT_EXCEEDED", err.Error())
		return
	}
	flows, res, err := h.solve(c.Request.Context(), req.Projection, cfg)
	if isCancelled(err) {
		writeError(c, http.StatusServiceUnavailable, "CANCELLED", err.Error())
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: classify(err)})
		return
	}

	h.logger.Debug("irr solved",
		zap.String("status", res.Status.String()),
		zap.Int("periods", len(flows)),
		zap.Int("iterations", res.Iterations),
	)
	c.JSON(http.StatusOK, models.NewIRRResponse(flows, res))
}

// ComputeNPV handles POST /api/v1/npv
func (h *IRRHandler) ComputeNPV(c *gin.Context) {
	var req models.NPVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if len(req.CashFlows) > h.limits.MaxCashFlows {
		writeError(c, http.StatusBadRequest, "LIMIT_EXCEEDED", fmt.Sprintf("at most %d cash flows", h.limits.MaxCashFlows))
		return
	}

	v, err := irr.NPV(req.CashFlows, *req.Rate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: classify(err)})
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		writeError(c, http.StatusUnprocessableEntity, "NON_FINITE", "net present value overflows at this rate")
		return
	}
	c.JSON(http.StatusOK, models.NPVResponse{NPV: v})
}

// CompareScenarios handles POST /api/v1/irr/compare
func (h *IRRHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.Scenarios) > h.limits.MaxScenarios {
		writeError(c, http.StatusBadRequest, "TOO_MANY_SCENARIOS", fmt.Sprintf("at most %d scenarios per comparison", h.limits.MaxScenarios))
		return
	}

	cfg := mergeSolver(h.solver, req.Solver)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: classify(err)})
		return
	}
	for _, sc := range req.Scenarios {
		if err := h.checkLimits(cfg, sc.Projection); err != nil {
			writeError(c, http.StatusBadRequest, "LIMIT_EXCEEDED", fmt.Sprintf("scenario %q: %v", sc.Name, err))
			return
		}
	}

	scenarios := make([]analysis.Scenario, len(req.Scenarios))
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(h.workers)
	for i, sc := range req.Scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			flows, res, err := h.solve(ctx, sc.Projection, cfg)
			if isCancelled(err) {
				return err
			}
			scenarios[i] = analysis.Scenario{Name: sc.Name, CashFlows: flows, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Warn("comparison aborted", zap.Error(err))
		writeError(c, http.StatusServiceUnavailable, "CANCELLED", err.Error())
		return
	}

	ranked := analysis.RankByRate(scenarios)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for _, r := range ranked {
		item := models.ComparisonResult{Name: r.Name, Rank: r.Rank}
		if r.Err != nil {
			detail := classify(r.Err)
			item.Error = &detail
		} else {
			item.Result = models.NewIRRResponse(r.CashFlows, r.Result)
		}
		comparison = append(comparison, item)
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// checkLimits rejects requests asking for more work than the server allows. It runs
// before the projection is expanded so a huge period count is never allocated.
func (h *IRRHandler) checkLimits(cfg irr.Config, req models.ProjectionRequest) error {
	if cfg.MaxIterations > h.limits.MaxIterations {
		return fmt.Errorf("max_iterations must be <= %d", h.limits.MaxIterations)
	}
	n := len(req.CashFlows)
	if model.Mode(req.Mode) == model.ModeAutomatic {
		n = req.Periods + 1
	}
	if n > h.limits.MaxCashFlows {
		return fmt.Errorf("at most %d cash flows", h.limits.MaxCashFlows)
	}
	return nil
}

func (h *IRRHandler) solve(ctx context.Context, req models.ProjectionRequest, cfg irr.Config) ([]float64, irr.Result, error) {
	flows, err := toProjection(req).Flows()
	if err != nil {
		return nil, irr.Result{}, err
	}
	res, err := irr.SolveContext(ctx, flows, cfg)
	if err != nil {
		return nil, irr.Result{}, err
	}
	return flows, res, nil
}
