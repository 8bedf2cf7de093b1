package handlers

import (
	"context"
	"errors"

	"blog-apps/internal/api/models"
	"blog-apps/internal/irr"
	"blog-apps/internal/model"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// classify maps solver and projection errors onto API error codes.
func classify(err error) models.ErrorDetail {
	switch {
	case errors.Is(err, irr.ErrSingularInput):
		return models.ErrorDetail{Code: "SINGULAR_INPUT", Message: err.Error()}
	case errors.Is(err, irr.ErrInvalidConfig):
		return models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()}
	default:
		return models.ErrorDetail{Code: "INVALID_PROJECTION", Message: err.Error()}
	}
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func toProjection(req models.ProjectionRequest) model.Projection {
	return model.Projection{
		Mode:              model.Mode(req.Mode),
		InitialInvestment: req.InitialInvestment,
		FirstReturn:       req.FirstReturn,
		Periods:           req.Periods,
		GrowthRate:        req.GrowthRate,
		CashFlows:         req.CashFlows,
	}
}

// mergeSolver overlays the non-nil options onto base.
func mergeSolver(base irr.Config, opts *models.SolverOptions) irr.Config {
	if opts == nil {
		return base
	}
	out := base
	if opts.InitialGuess != nil {
		out.InitialGuess = *opts.InitialGuess
	}
	if opts.MaxIterations != nil {
		out.MaxIterations = *opts.MaxIterations
	}
	if opts.Tolerance != nil {
		out.Tolerance = *opts.Tolerance
		// Step follows a custom tolerance unless set explicitly.
		if opts.Step == nil {
			out.Step = 0
		}
	}
	if opts.Step != nil {
		out.Step = *opts.Step
	}
	if opts.RederiveEvery != nil {
		out.RederiveEvery = *opts.RederiveEvery
	}
	return out
}
