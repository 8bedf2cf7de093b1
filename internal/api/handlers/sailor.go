package handlers

import (
	"bytes"
	"math/rand/v2"
	"net/http"

	"blog-apps/internal/api/models"
	"blog-apps/internal/data"
	"blog-apps/internal/sailor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SailorHandler serves the drunken-sailor simulator. Results are cached so the
// per-walk ledger can be fetched afterwards.
type SailorHandler struct {
	defaults sailor.Params
	limits   sailor.Limits
	cache    *data.ResultCache
	logger   *zap.Logger
	newSeed  func() uint64
}

// NewSailorHandler creates a new simulator handler
func NewSailorHandler(defaults sailor.Params, limits sailor.Limits, cache *data.ResultCache, logger *zap.Logger) *SailorHandler {
	return &SailorHandler{
		defaults: defaults,
		limits:   limits,
		cache:    cache,
		logger:   logger,
		newSeed:  rand.Uint64,
	}
}

// RunSimulation handles POST /api/v1/sailor
func (h *SailorHandler) RunSimulation(c *gin.Context) {
	var req models.SailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	p := h.defaults
	if req.StartPosition != nil {
		p.StartPosition = *req.StartPosition
	}
	if req.TowardsEdge != nil {
		p.TowardsEdge = *req.TowardsEdge
	}
	if req.Simulations != nil {
		p.Simulations = *req.Simulations
	}
	if req.MaxSteps != nil {
		p.MaxSteps = *req.MaxSteps
	}
	seed := h.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sim := sailor.New(seed)
	sim.Limits = h.limits
	res, err := sim.RunContext(c.Request.Context(), p)
	if isCancelled(err) {
		writeError(c, http.StatusServiceUnavailable, "CANCELLED", err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	id := h.cache.Put(res)
	h.logger.Debug("simulation cached",
		zap.String("id", id),
		zap.Uint64("seed", seed),
		zap.Int("simulations", p.Simulations),
		zap.Int("deaths", res.Summary.Deaths),
	)

	resp := models.SailorResponse{
		ID:      id,
		Seed:    seed,
		Params:  models.NewSailorParams(p),
		Summary: models.NewSailorSummary(res.Summary),
	}
	if req.IncludeRuns {
		resp.Runs = models.NewSailorRuns(res.Runs)
	}
	c.JSON(http.StatusOK, resp)
}

// GetRuns handles GET /api/v1/sailor/:id/runs
func (h *SailorHandler) GetRuns(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "simulation not found or expired")
		return
	}

	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := sailor.WriteRunsCSV(&buf, res.Runs); err != nil {
			writeError(c, http.StatusInternalServerError, "CSV_ERROR", err.Error())
			return
		}
		c.Header("Content-Disposition", "attachment; filename=\"sailor-"+id+".csv\"")
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, models.SailorRunsResponse{ID: id, Runs: models.NewSailorRuns(res.Runs)})
}

// GetLindy handles GET /api/v1/sailor/:id/lindy
func (h *SailorHandler) GetLindy(c *gin.Context) {
	var req models.LindyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "simulation not found or expired")
		return
	}

	c.JSON(http.StatusOK, models.NewLindyResponse(id, sailor.Lindy(res, req.Barrier)))
}
