package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/internal/application/analytics"
	"github.com/pierrepaulo/stock-control/internal/application/auth"
	"github.com/pierrepaulo/stock-control/internal/application/inventory"
	"github.com/pierrepaulo/stock-control/internal/application/usecase"
	"github.com/pierrepaulo/stock-control/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	MoveUC      *inventory.MoveUseCase
	DashboardUC *analytics.DashboardUseCase
	UserRepo    repository.UserRepository
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Healthcheck (público, sem envelope)
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})

	// Auth: login público, o resto atrás do middleware
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.UserRepo))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Post("/logout", authHandler.Logout)
	protectedAuth.Get("/me", authHandler.Me)

	// Users (protegido; criação, atualização completa e exclusão exigem admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Moves (protegido)
	moves := protected.Group("/moves")
	moveHandler := NewMoveHandler(deps.MoveUC)
	moves.Post("/", moveHandler.Create)
	moves.Get("/", moveHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/inventory-value", dashboardHandler.InventoryValue)
	dashboard.Get("/moves-summary", dashboardHandler.MovesSummary)
	dashboard.Get("/moves-graph", dashboardHandler.MovesGraph)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/low-stock/report", dashboardHandler.LowStockReport)
	dashboard.Get("/stagnant-products", dashboardHandler.StagnantProducts)
}
