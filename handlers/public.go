package handlers

import (
	"net/http"

	"resto-backend/lifecycle"

	"github.com/gin-gonic/gin"
)

// Health is the liveness endpoint
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Order Management API",
	})
}

// Welcome points new clients at the role surfaces
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Restaurant Order Management API",
		"health":  "/health",
		"states":  "/estados",
		"roles":   []string{"bar", "kitchen", "waiter", "delivery", "owner"},
	})
}

// LifecycleInfo documents the order lifecycle for front-ends
func LifecycleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stages":      lifecycle.Describe(),
		"terminal":    "closed",
		"description": "Order fulfillment lifecycle: dine-in runs through the kitchen and table stages, delivery through en_route and delivered; closing settles either track.",
	})
}
