package handlers

import (
	"net/http"

	"resto-backend/config"
	"resto-backend/models"

	"github.com/gin-gonic/gin"
)

// ListMenu returns every menu row, active or not. Front-ends filter on
// the active flag themselves.
func ListMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

type CreateMenuItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	Stock    int    `json:"stock"`
}

// CreateMenuItem adds an item to the menu, active by default
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
		Active:   true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": item.ID})
}

type UpdateMenuItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Active   bool   `json:"active"`
}

// UpdateMenuItem overwrites name, category, stock and active for one item
func UpdateMenuItem(c *gin.Context) {
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := config.DB.Model(&models.MenuItem{}).Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"name":     req.Name,
			"category": req.Category,
			"stock":    req.Stock,
			"active":   req.Active,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// UpdateStock overwrites the stock count only (kitchen)
func UpdateStock(c *gin.Context) {
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updateMenuField(c, "stock", *req.Stock)
}

type UpdateActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// UpdateActive overwrites the active flag only
func UpdateActive(c *gin.Context) {
	var req UpdateActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updateMenuField(c, "active", *req.Active)
}

// DeactivateMenuItem hides an item from ordering clients without a body
func DeactivateMenuItem(c *gin.Context) {
	updateMenuField(c, "active", false)
}

func updateMenuField(c *gin.Context, column string, value interface{}) {
	res := config.DB.Model(&models.MenuItem{}).Where("id = ?", c.Param("id")).
		Update(column, value)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
