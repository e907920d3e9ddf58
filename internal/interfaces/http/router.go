package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/auth"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/catalog"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/orders"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CatalogUC     *catalog.CatalogUseCase
	PlaceOrderUC  *orders.PlaceOrderUseCase
	FulfillmentUC *orders.FulfillmentUseCase
	ReceiptUC     *orders.ReceiptUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	productHandler := NewProductHandler(deps.CatalogUC)
	orderHandler := NewOrderHandler(deps.PlaceOrderUC, deps.FulfillmentUC, deps.ReceiptUC)

	// Marketplace (público: cualquiera puede mirar la vitrina)
	api.Get("/marketplace", productHandler.Marketplace)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Detalle de producto y compra (cualquier rol autenticado puede comprar)
	products := protected.Group("/products")
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/orders", orderHandler.Place)

	// Farmer: gestión de productos propios y cumplimiento de órdenes
	farmer := protected.Group("/farmer", RequireRole(string(entity.RoleFarmer)))
	farmer.Post("/products", productHandler.Create)
	farmer.Get("/products", productHandler.Dashboard)
	farmer.Put("/products/:id", productHandler.Update)
	farmer.Delete("/products/:id", productHandler.Delete)
	farmer.Get("/orders", orderHandler.FarmerOrders)
	farmer.Put("/orders/:id/status", orderHandler.UpdateStatus)

	// Corporate: historial de compras (solo lectura) y comprobantes
	corporate := protected.Group("/corporate", RequireRole(string(entity.RoleCorporate)))
	corporate.Get("/orders", orderHandler.CorporateOrders)
	corporate.Get("/orders/:id/receipt", orderHandler.Receipt)
}
