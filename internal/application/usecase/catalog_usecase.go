package usecase

import (
	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/sku"
)

// CatalogUseCase consultas sobre la taxonomía estática y conversión de SKU de proveedor.
// No usa base de datos.
type CatalogUseCase struct{}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

// ListCategories devuelve la taxonomía completa en orden de visualización.
func (uc *CatalogUseCase) ListCategories() []dto.CategoryResponse {
	defs := catalog.Definitions()
	out := make([]dto.CategoryResponse, 0, len(defs))
	for _, c := range defs {
		out = append(out, dto.CategoryResponse{
			Code:          c.Code,
			Name:          c.Name,
			SortOrder:     c.SortOrder,
			SubCategories: toSubCategoryResponses(c.SubCategories),
		})
	}
	return out
}

// SubCategories devuelve las subcategorías de la categoría; vacío si no existe.
func (uc *CatalogUseCase) SubCategories(categoryCode string) []dto.SubCategoryResponse {
	return toSubCategoryResponses(catalog.SubCategoriesFor(categoryCode))
}

// ResolveSubCategory busca el código de subcategoría por nombre. Devuelve nil si no hay match.
func (uc *CatalogUseCase) ResolveSubCategory(categoryCode, name string) *dto.ResolveSubCategoryResponse {
	code, ok := catalog.FindSubCategoryCode(categoryCode, name)
	if !ok {
		return nil
	}
	return &dto.ResolveSubCategoryResponse{CategoryCode: categoryCode, Name: name, SubCategoryCode: code}
}

// Validate valida un código de categoría y, opcionalmente, uno de subcategoría.
func (uc *CatalogUseCase) Validate(categoryCode, subCategoryCode string) dto.ValidateCodesResponse {
	out := dto.ValidateCodesResponse{
		CategoryCode:    categoryCode,
		CategoryValid:   catalog.IsValidCategoryCode(categoryCode),
		SubCategoryCode: subCategoryCode,
	}
	if subCategoryCode != "" {
		out.SubCategoryValid = catalog.IsValidSubCategoryCode(subCategoryCode)
		out.SubCategoryInCategory = out.SubCategoryValid && out.CategoryValid &&
			subCategoryCode[:1] == categoryCode
	}
	return out
}

// ConvertTecomSKU convierte un código Tecom al SKU interno.
// Errores: domain.ErrInvalidInput, domain.ErrUnsupportedPrefix.
func (uc *CatalogUseCase) ConvertTecomSKU(supplierSKU string) (*dto.ConvertSKUResponse, error) {
	if supplierSKU == "" {
		return nil, domain.ErrInvalidInput
	}
	internal, err := sku.ConvertTecomSKU(supplierSKU)
	if err != nil {
		return nil, err
	}
	return &dto.ConvertSKUResponse{SupplierSKU: supplierSKU, InternalSKU: internal}, nil
}

func toSubCategoryResponses(subs []catalog.SubCategory) []dto.SubCategoryResponse {
	out := make([]dto.SubCategoryResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubCategoryResponse{Code: s.Code, Name: s.Name, SortOrder: s.SortOrder})
	}
	return out
}
