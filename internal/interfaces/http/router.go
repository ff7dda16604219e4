package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-industrial/internal/application/auth"
	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *usecase.CatalogUseCase
	ProductUC   *usecase.ProductUseCase
	SeedUC      *appcatalog.SeedUseCase
	ImportUC    *appcatalog.ImportUseCase
	MigrationUC *appcatalog.MigrationUseCase
	Import      ImportConfig
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
	adminOnly := RequireRole(entity.RoleAdmin)

	// Catálogo: lectura para cualquier rol, mantenimiento solo admin
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.SeedUC, deps.MigrationUC)
	importHandler := NewImportHandler(deps.ImportUC, deps.Import)
	catalogGroup.Get("/categories", catalogHandler.ListCategories)
	catalogGroup.Get("/categories/:code/subcategories", catalogHandler.SubCategories)
	catalogGroup.Get("/subcategories/resolve", catalogHandler.ResolveSubCategory)
	catalogGroup.Get("/validate", catalogHandler.Validate)
	catalogGroup.Post("/sku/tecom", catalogHandler.ConvertTecomSKU)
	catalogGroup.Post("/seed", adminOnly, catalogHandler.Seed)
	catalogGroup.Post("/import", adminOnly, importHandler.Import)
	catalogGroup.Post("/migrate", adminOnly, catalogHandler.Migrate)

	// Products (protegido; escritura admin o bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	products.Post("/", canWrite, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)
}
