package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"inventory-game/internal/analysis"
	"inventory-game/internal/api/models"
	"inventory-game/internal/demand"
	"inventory-game/internal/metrics"
	"inventory-game/internal/sim"
	"inventory-game/internal/store"

	"github.com/gin-gonic/gin"
)

// GameHandler drives interactive runs held in the run store.
type GameHandler struct {
	store *store.RunStore
}

func NewGameHandler(s *store.RunStore) *GameHandler {
	return &GameHandler{store: s}
}

// CreateGame handles POST /api/v1/games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
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

	sess, err := h.store.Create(params, src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	metrics.IncGameCreated()
	c.JSON(http.StatusCreated, gameResponse(sess))
}

// GetGame handles GET /api/v1/games/:id
func (h *GameHandler) GetGame(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gameResponse(sess))
}

// PlaceOrder handles POST /api/v1/games/:id/orders.
// The order commits before demand is revealed; the response carries the
// resolved period.
func (h *GameHandler) PlaceOrder(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	rec, err := sess.Step(*req.OrderQty)
	if err != nil {
		metrics.IncPeriod(metrics.ResultError)
		status := http.StatusBadRequest
		code := "INVALID_ORDER"
		if errors.Is(err, sim.ErrSequence) {
			status = http.StatusConflict
			code = "SEQUENCE_ERROR"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	metrics.IncPeriod(metrics.ResultOK)
	c.JSON(http.StatusOK, models.StepResponse{
		Record: convertRecord(rec),
		Game:   gameResponse(sess),
	})
}

// GetLedger handles GET /api/v1/games/:id/ledger
func (h *GameHandler) GetLedger(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	ledger := sess.Ledger()
	c.JSON(http.StatusOK, models.LedgerResponse{
		Ledger:  convertLedger(ledger),
		Summary: convertSummary(analysis.Summarize(ledger)),
	})
}

// ExportLedger handles GET /api/v1/games/:id/export?format=csv|xlsx
func (h *GameHandler) ExportLedger(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	ledger := sess.Ledger()

	format := c.DefaultQuery("format", "csv")
	filename := fmt.Sprintf("inventory-game-%s.%s", time.Now().Format("20060102-150405"), format)

	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := sim.EncodeLedgerCSV(&buf, ledger); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "EXPORT_ERROR", Message: err.Error()},
			})
			return
		}
		metrics.IncExport("csv")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	case "xlsx":
		raw, err := sim.LedgerXLSX(sess.Params(), ledger)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "EXPORT_ERROR", Message: err.Error()},
			})
			return
		}
		metrics.IncExport("xlsx")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_FORMAT",
				Message: fmt.Sprintf("unsupported export format: %q", format),
			},
		})
	}
}

// ResetGame handles POST /api/v1/games/:id/reset
func (h *GameHandler) ResetGame(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := sess.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RESET_ERROR", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, gameResponse(sess))
}

// DeleteGame handles DELETE /api/v1/games/:id
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id := c.Param("id")
	if !h.store.Delete(id) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "GAME_NOT_FOUND",
				Message: fmt.Sprintf("no game with id %q", id),
			},
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) lookup(c *gin.Context) (*store.Session, bool) {
	id := c.Param("id")
	sess, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "GAME_NOT_FOUND",
				Message: fmt.Sprintf("no game with id %q", id),
			},
		})
		return nil, false
	}
	return sess, true
}

func gameResponse(sess *store.Session) models.GameResponse {
	st := sess.Status()
	status := "in_progress"
	if st.Finished {
		status = "finished"
	}
	resp := models.GameResponse{
		ID:               sess.ID,
		Status:           status,
		Horizon:          st.Horizon,
		CurrentInventory: st.CurrentInventory,
		CumulativeCost:   st.CumulativeCost,
		CreatedAt:        sess.CreatedAt,
	}
	if !st.Finished {
		resp.NextPeriod = st.NextPeriod
	}
	return resp
}

func demandErrorCode(err error) string {
	switch {
	case errors.Is(err, demand.ErrInsufficientData):
		return "INSUFFICIENT_DATA"
	case errors.Is(err, demand.ErrInvalidRange):
		return "INVALID_RANGE"
	default:
		return "INVALID_DEMAND"
	}
}
