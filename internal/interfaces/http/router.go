// Package http expone la API sobre Fiber: handlers finos que parsean,
// delegan al caso de uso y mapean errores de dominio a códigos HTTP.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restostock-api/internal/application/auth"
	"github.com/jhoicas/restostock-api/internal/application/product"
	"github.com/jhoicas/restostock-api/internal/application/recipe"
	"github.com/jhoicas/restostock-api/internal/application/report"
	"github.com/jhoicas/restostock-api/internal/application/stock"
	"github.com/jhoicas/restostock-api/internal/application/supplier"
	"github.com/jhoicas/restostock-api/internal/domain/entity"
	"github.com/jhoicas/restostock-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *product.UseCase
	RegisterMovement *stock.RegisterMovementUseCase
	LedgerQuery      *stock.LedgerQueryUseCase
	RecipeUC         *recipe.UseCase
	SupplierUC       *supplier.UseCase
	ReportUC         *report.UseCase
	PDFGen           report.PDFGenerator
	OrgRepo          repository.OrganizationRepository
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Stock: libro de movimientos (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.RegisterMovement, deps.LedgerQuery)
	stockGroup.Post("/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Post("/recipe-exit", stockHandler.RecipeExit)

	// Recipes (protegido)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", RequireRole(entity.RoleOwner, entity.RoleAdmin, entity.RoleManager), recipeHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDFGen, deps.OrgRepo)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/shopping-list", reportHandler.ShoppingList)
	reports.Get("/shopping-list/pdf", reportHandler.ShoppingListPDF)
	reports.Get("/consumption", reportHandler.Consumption)
	reports.Get("/consumption/pdf", reportHandler.ConsumptionPDF)

	// Webhooks de ventas (protegido; token de integración)
	webhooks := protected.Group("/webhooks")
	webhookHandler := NewWebhookHandler(deps.RegisterMovement)
	webhooks.Post("/sales", webhookHandler.Sales)
}
