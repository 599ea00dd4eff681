package handlers

import (
	"net/http"

	"inventory-game/internal/analysis"
	"inventory-game/internal/api/models"
	"inventory-game/internal/policy"
	"inventory-game/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs stateless full games: the whole order sequence comes
// in one request, no session is kept.
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// Run handles POST /api/v1/simulate
func (h *SimulateHandler) Run(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := buildParams(req.GameFile, req.Game)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	src, err := buildSource(req.Demand, params.Horizon)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    demandErrorCode(err),
				Message: err.Error(),
			},
		})
		return
	}

	result, err := sim.Run(params, req.Orders, src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: convertSummary(analysis.Summarize(result.Ledger)),
	}
	if req.Options.IncludeLedger {
		resp.Ledger = convertLedger(result.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/simulate/compare
func (h *SimulateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := buildParams(req.GameFile, req.Game)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	src, err := buildSource(req.Demand, params.Horizon)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    demandErrorCode(err),
				Message: err.Error(),
			},
		})
		return
	}

	policies := make([]policy.Policy, 0, len(req.Policies))
	for _, spec := range req.Policies {
		p, err := buildPolicy(spec)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_POLICY",
					Message: err.Error(),
				},
			})
			return
		}
		policies = append(policies, p)
	}

	ranked, err := analysis.RankPolicies(params, src, policies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.PolicyComparison, 0, len(ranked))
	for _, r := range ranked {
		comparison = append(comparison, models.PolicyComparison{
			Policy:  r.Policy,
			Summary: convertSummary(r.Summary),
		})
	}
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}
