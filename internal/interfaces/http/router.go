package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/sales"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CreateSell *sales.CreateSellUseCase
	SellReport *sales.SellReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Post("/products", productHandler.Create)
	app.Put("/products/:id", productHandler.Update)
	app.Delete("/products/:id", productHandler.Delete)

	// Sells
	sellHandler := NewSellHandler(deps.CreateSell, deps.SellReport)
	app.Post("/sells", sellHandler.Create)
	app.Get("/sells/:date", sellHandler.ListByDate)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Post("/user", authHandler.Register)
	app.Get("/auth/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
}
