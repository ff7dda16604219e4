package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/application/usecase"
)

// CatalogHandler expone la taxonomía, la conversión de SKU Tecom y las tareas de
// mantenimiento del catálogo (seed y migración de códigos).
type CatalogHandler struct {
	uc        *usecase.CatalogUseCase
	seed      *appcatalog.SeedUseCase
	migration *appcatalog.MigrationUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, seed *appcatalog.SeedUseCase, migration *appcatalog.MigrationUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc, seed: seed, migration: migration}
}

// ListCategories godoc
// @Summary      Árbol de categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCategories())
}

// SubCategories godoc
// @Summary      Subcategorías de una categoría
// @Description  Categoría desconocida devuelve lista vacía.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de categoría (una letra)"
// @Success      200   {array}  dto.SubCategoryResponse
// @Router       /api/catalog/categories/{code}/subcategories [get]
func (h *CatalogHandler) SubCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.SubCategories(c.Params("code")))
}

// ResolveSubCategory godoc
// @Summary      Resolver subcategoría por nombre
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true  "Código de categoría"
// @Param        name      query  string  true  "Nombre de la subcategoría (se normaliza)"
// @Success      200  {object}  dto.ResolveSubCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/subcategories/resolve [get]
func (h *CatalogHandler) ResolveSubCategory(c *fiber.Ctx) error {
	category := c.Query("category")
	name := c.Query("name")
	if category == "" || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category y name son requeridos"})
	}
	out := h.uc.ResolveSubCategory(category, name)
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar códigos de categoría y subcategoría
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category     query  string  false  "Código de categoría"
// @Param        subcategory  query  string  false  "Código de subcategoría"
// @Success      200  {object}  dto.ValidateCodesResponse
// @Router       /api/catalog/validate [get]
func (h *CatalogHandler) Validate(c *fiber.Ctx) error {
	return c.JSON(h.uc.Validate(c.Query("category"), c.Query("subcategory")))
}

// ConvertTecomSKU godoc
// @Summary      Convertir SKU Tecom a SKU interno
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConvertSKURequest  true  "Código del proveedor"
// @Success      200  {object}  dto.ConvertSKUResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/sku/tecom [post]
func (h *CatalogHandler) ConvertTecomSKU(c *fiber.Ctx) error {
	var in dto.ConvertSKURequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ConvertTecomSKU(in.SupplierSKU)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Seed godoc
// @Summary      Sincronizar taxonomía en base de datos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SeedResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/catalog/seed [post]
func (h *CatalogHandler) Seed(c *fiber.Ctx) error {
	out, err := h.seed.Seed(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Migrate godoc
// @Summary      Migrar códigos heredados de los productos
// @Description  Aplica las tablas de migración y el emparejamiento por nombre. Con dry_run=true solo reporta.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        dry_run  query  bool  false  "Solo reportar"
// @Success      200  {object}  dto.MigrationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/catalog/migrate [post]
func (h *CatalogHandler) Migrate(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	out, err := h.migration.Migrate(c.UserContext(), companyID, c.QueryBool("dry_run", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
