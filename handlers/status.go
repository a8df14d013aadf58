package handlers

import (
	"net/http"

	"resto-backend/config"
	"resto-backend/lifecycle"
	"resto-backend/models"

	"github.com/gin-gonic/gin"
)

// MarkKitchenReady is the kitchen flagging an order as ready
func MarkKitchenReady(c *gin.Context) {
	setStatus(c, models.StatusKitchenReady)
}

// MarkTableAssembled is the waiter flagging the table as served
func MarkTableAssembled(c *gin.Context) {
	setStatus(c, models.StatusTableAssembled)
}

// MarkEnRoute is a delivery driver taking an order out
func MarkEnRoute(c *gin.Context) {
	setStatus(c, models.StatusEnRoute)
}

// MarkDelivered is a delivery driver confirming handoff
func MarkDelivered(c *gin.Context) {
	setStatus(c, models.StatusDelivered)
}

// MarkClosed settles the order, making it eligible for history and cleanup
func MarkClosed(c *gin.Context) {
	setStatus(c, models.StatusClosed)
}

type ForceStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// ForceStatus lets an owner move an order to any known status, for
// manual corrections.
func ForceStatus(c *gin.Context) {
	var req ForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !lifecycle.Known(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + string(req.Status)})
		return
	}
	setStatus(c, req.Status)
}

// setStatus is the single-field transition shared by every endpoint.
// There is no gate on the current status: re-applying a transition is a
// no-op and staff may jump an order to any stage.
func setStatus(c *gin.Context, status models.OrderStatus) {
	res := config.DB.Model(&models.Order{}).Where("id = ?", c.Param("id")).
		Update("status", status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
