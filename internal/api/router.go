package api

import (
	"net/http"
	"os"
	"strings"

	"blog-apps/internal/api/handlers"
	"blog-apps/internal/api/middleware"
	"blog-apps/internal/config"
	"blog-apps/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middleware, the API routes and, when cfg.Server.StaticDir exists,
// the single-page app.
func NewRouter(cfg *config.Config, cache *data.ResultCache, logger *zap.Logger) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	solver := cfg.Solver.ToIRR()
	params := cfg.Sailor.ToParams()

	irrLimits := handlers.IRRLimits{
		MaxIterations: cfg.Solver.MaxIterationsLimit,
		MaxCashFlows:  cfg.Solver.MaxCashFlows,
		MaxScenarios:  cfg.Server.MaxScenarios,
	}
	sailorLimits := cfg.Sailor.Limits()

	irrHandler := handlers.NewIRRHandler(solver, irrLimits, cfg.Server.CompareWorkers, logger)
	sailorHandler := handlers.NewSailorHandler(params, sailorLimits, cache, logger)
	appsHandler := handlers.NewAppsHandler(solver, irrLimits, params, sailorLimits)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cached_simulations": cache.Len()})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/apps", appsHandler.ListApps)

		api.POST("/npv", irrHandler.ComputeNPV)
		api.POST("/irr", irrHandler.SolveIRR)
		api.POST("/irr/compare", irrHandler.CompareScenarios)

		api.POST("/sailor", sailorHandler.RunSimulation)
		api.GET("/sailor/:id/runs", sailorHandler.GetRuns)
		api.GET("/sailor/:id/lindy", sailorHandler.GetLindy)
	}

	staticDir := strings.TrimSuffix(cfg.Server.StaticDir, "/")
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
				return
			}
			c.File(staticDir + "/index.html")
		})
		logger.Info("serving static files", zap.String("dir", staticDir))
	} else {
		logger.Info("static directory not found, skipping static file serving", zap.String("dir", staticDir))
	}

	return router
}
