package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"resto-backend/config"
	"resto-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// rejection is a client-input failure inside the create transaction; it
// maps to a 400 instead of the 500 used for store errors.
type rejection struct {
	msg string
}

func (r *rejection) Error() string { return r.msg }

type CreateOrderRequest struct {
	Type          string            `json:"type"`
	TableNumber   *int              `json:"table_number"`
	Location      *string           `json:"location"`
	PartySize     *int              `json:"party_size"`
	Customer      *string           `json:"customer"`
	Phone         *string           `json:"phone"`
	Address       *string           `json:"address"`
	RequestedTime *string           `json:"requested_time"`
	OrderNumber   *string           `json:"order_number"`
	Note          *string           `json:"note"`
	Items         models.OrderItems `json:"items"`
}

// CreateOrder validates stock for every line, decrements it and inserts
// the order, all inside one transaction. Any line failing leaves the
// store untouched.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, models.ErrInvalidItems) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid items"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid items"})
		return
	}

	order := models.Order{
		Type:          req.Type,
		TableNumber:   req.TableNumber,
		Location:      req.Location,
		PartySize:     req.PartySize,
		Customer:      req.Customer,
		Phone:         req.Phone,
		Address:       req.Address,
		RequestedTime: req.RequestedTime,
		OrderNumber:   req.OrderNumber,
		Note:          req.Note,
		Items:         req.Items,
		Status:        models.StatusPending,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Check every line before touching anything, so at most one
		// decision is made for the whole order.
		for _, line := range req.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &rejection{msg: fmt.Sprintf("insufficient stock for %s", line.Name)}
				}
				return err
			}
			if item.Stock < line.Quantity {
				return &rejection{msg: fmt.Sprintf("insufficient stock for %s", item.Name)}
			}
		}

		for _, line := range req.Items {
			if err := tx.Model(&models.MenuItem{}).Where("id = ?", line.ID).
				Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		var rej *rejection
		if errors.As(err, &rej) {
			c.JSON(http.StatusBadRequest, gin.H{"error": rej.msg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": order.ID})
}

// KitchenQueue lists orders the kitchen still has to act on
func KitchenQueue(c *gin.Context) {
	listOpenOrders(c)
}

// WaiterQueue lists the same open orders under the waiters' own path
func WaiterQueue(c *gin.Context) {
	listOpenOrders(c)
}

func listOpenOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.
		Where("status IN ?", []models.OrderStatus{models.StatusPending, models.StatusKitchenReady}).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// DeliveryQueue lists delivery orders not yet delivered
func DeliveryQueue(c *gin.Context) {
	var orders []models.Order
	err := config.DB.
		Where("type = ? AND status IN ?", "delivery",
			[]models.OrderStatus{models.StatusPending, models.StatusEnRoute}).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// History lists closed orders, newest first (owners)
func History(c *gin.Context) {
	var orders []models.Order
	err := config.DB.
		Where("status = ?", models.StatusClosed).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
