package handlers

import (
	"net/http"

	"resto-backend/config"
	"resto-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClearClosed bulk-deletes settled orders, typically at end of day
func ClearClosed(c *gin.Context) {
	res := config.DB.Where("status = ?", models.StatusClosed).Delete(&models.Order{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "eliminados": res.RowsAffected})
}

// ResetSystem wipes orders and menu in one transaction, so a failure on
// either table leaves both intact.
func ResetSystem(c *gin.Context) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.MenuItem{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
