package routes

import (
	"resto-backend/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Menu (bar / kitchen) ───────────────────────────────────────
	menu := r.Group("/menu")
	{
		menu.GET("", handlers.ListMenu)
		menu.POST("", handlers.CreateMenuItem)
		menu.PUT("/:id", handlers.UpdateMenuItem)
		menu.PUT("/:id/stock", handlers.UpdateStock)
		menu.PUT("/:id/activo", handlers.UpdateActive)
		menu.PUT("/:id/desactivar", handlers.DeactivateMenuItem)
	}

	// ── Orders ────────────────────────────────────────────────────
	pedidos := r.Group("/pedidos")
	{
		pedidos.POST("", handlers.CreateOrder)

		// Role queues
		pedidos.GET("/cocina", handlers.KitchenQueue)
		pedidos.GET("/mozos", handlers.WaiterQueue)
		pedidos.GET("/delivery", handlers.DeliveryQueue)

		// Lifecycle transitions; en-camino and entregado accept both
		// verbs because the delivery front-end sends either.
		pedidos.PUT("/:id/cocina", handlers.MarkKitchenReady)
		pedidos.PUT("/:id/mesa", handlers.MarkTableAssembled)
		pedidos.PUT("/:id/cerrar", handlers.MarkClosed)
		pedidos.PUT("/:id/en-camino", handlers.MarkEnRoute)
		pedidos.POST("/:id/en-camino", handlers.MarkEnRoute)
		pedidos.PUT("/:id/entregado", handlers.MarkDelivered)
		pedidos.POST("/:id/entregado", handlers.MarkDelivered)
	}

	// ── Owners ────────────────────────────────────────────────────
	r.GET("/historial", handlers.History)
	r.GET("/estados", handlers.LifecycleInfo)

	// ── Admin ─────────────────────────────────────────────────────
	admin := r.Group("/admin")
	{
		admin.DELETE("/limpiar-cerrados", handlers.ClearClosed)
		admin.DELETE("/reset-sistema", handlers.ResetSystem)
		admin.PUT("/pedidos/:id/estado", handlers.ForceStatus)
	}
}
