package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps agrupa los handlers que el router necesita.
type RouterDeps struct {
	Items     *ItemHandler
	Movements *MovementHandler
	Suppliers *SupplierHandler
	Orders    *OrderHandler
	Reports   *ReportHandler
}

// Router registra todas las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	items := api.Group("/items")
	items.Post("/", deps.Items.Create)
	items.Get("/", deps.Items.List)
	items.Get("/:id", deps.Items.GetByID)
	items.Put("/:id", deps.Items.Update)
	items.Delete("/:id", deps.Items.Delete)

	api.Get("/categories", deps.Items.Categories)

	movements := api.Group("/movements")
	movements.Post("/", deps.Movements.Register)
	movements.Get("/", deps.Movements.List)

	suppliers := api.Group("/suppliers")
	suppliers.Post("/", deps.Suppliers.Create)
	suppliers.Get("/", deps.Suppliers.List)
	suppliers.Get("/:id", deps.Suppliers.GetByID)
	suppliers.Put("/:id", deps.Suppliers.Update)
	suppliers.Delete("/:id", deps.Suppliers.Delete)

	orders := api.Group("/orders")
	orders.Post("/", deps.Orders.Create)
	orders.Get("/", deps.Orders.List)
	orders.Get("/:id", deps.Orders.GetByID)
	orders.Put("/:id", deps.Orders.Update)
	orders.Put("/:id/status", deps.Orders.UpdateStatus)
	orders.Post("/:id/messages", deps.Orders.AppendMessage)
	orders.Delete("/:id", deps.Orders.Delete)

	reports := api.Group("/reports")
	reports.Get("/summary", deps.Reports.Summary)
	reports.Get("/inventory.pdf", deps.Reports.InventoryPDF)
}
