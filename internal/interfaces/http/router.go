package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/envasadora/insumos-api/internal/application/auth"
	"github.com/envasadora/insumos-api/internal/application/transactions"
	"github.com/envasadora/insumos-api/internal/application/usecase"
	"github.com/envasadora/insumos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *usecase.InventoryUseCase
	ReferenceUC *usecase.ReferenceUseCase
	UserUC      *usecase.UserUseCase
	ReportUC    *usecase.ReportUseCase
	SubmitUC    *transactions.SubmitUseCase
	HistoryUC   *transactions.HistoryUseCase
	JWTSecret   string
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

	// Escritura: admin y almacenista. Lectura: cualquier rol autenticado.
	writer := RequireRole(entity.RoleAdmin, entity.RoleAlmacenista)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Inventario de insumos
	insumos := protected.Group("/insumos")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	insumos.Get("/", inventoryHandler.List)
	insumos.Get("/alertas", inventoryHandler.Alerts)
	insumos.Get("/plantilla", inventoryHandler.Template)
	insumos.Post("/", writer, inventoryHandler.Create)
	insumos.Put("/:id/minimo", writer, inventoryHandler.UpdateMinimum)
	insumos.Delete("/:id", adminOnly, inventoryHandler.Delete)

	// Recepciones y entregas
	transactionHandler := NewTransactionHandler(deps.SubmitUC, deps.HistoryUC)
	recepciones := protected.Group("/recepciones")
	recepciones.Post("/", writer, transactionHandler.CreateReception)
	recepciones.Get("/", transactionHandler.ListReceptions)
	recepciones.Get("/:id", transactionHandler.GetReception)

	entregas := protected.Group("/entregas")
	entregas.Post("/", writer, transactionHandler.CreateDelivery)
	entregas.Get("/", transactionHandler.ListDeliveries)
	entregas.Get("/:id", transactionHandler.GetDelivery)

	// Listas de referencia del formulario
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	protected.Get("/referencias", referenceHandler.FormReferences)

	clientes := protected.Group("/clientes")
	clientes.Get("/", referenceHandler.ListClients)
	clientes.Post("/", writer, referenceHandler.CreateClient)

	presentaciones := protected.Group("/presentaciones")
	presentaciones.Get("/", referenceHandler.ListPresentations)
	presentaciones.Post("/", writer, referenceHandler.CreatePresentation)

	categorias := protected.Group("/categorias")
	categorias.Get("/", referenceHandler.ListCategories)
	categorias.Post("/", writer, referenceHandler.CreateCategory)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes/inventario.xlsx", reportHandler.InventoryXLSX)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)
}
