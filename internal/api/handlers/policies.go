package handlers

import (
	"net/http"

	"inventory-game/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles policy catalog requests.
type PolicyHandler struct{}

func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// ListPolicies handles GET /api/v1/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies := []models.PolicyInfo{
		{
			Name:        "constant",
			Description: "Orders the same quantity every period regardless of stock.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "qty",
					Type:        "float",
					Description: "Order quantity per period",
					Default:     0.0,
				},
			},
		},
		{
			Name:        "base-stock",
			Description: "Orders up to a target level each period: level minus on-hand stock.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "level",
					Type:        "float",
					Description: "Target inventory position after ordering",
					Default:     0.0,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"policies": policies})
}
