package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
	"github.com/jhoicas/catalogo-industrial/internal/domain/sku"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. La categoría debe ser vigente y la subcategoría, si viene,
// debe pertenecer a ella. El precio no puede ser negativo. Cost inicia en 0.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	supplier := strings.ToLower(strings.TrimSpace(in.Supplier))
	productSKU := strings.TrimSpace(in.SKU)
	if productSKU == "" {
		if supplier != sku.SupplierTecom {
			return nil, domain.ErrInvalidInput
		}
		converted, err := sku.ConvertTecomSKU(strings.TrimSpace(in.SupplierSKU))
		if err != nil {
			return nil, err
		}
		productSKU = converted
	}
	if err := validateClassification(in.CategoryCode, in.SubCategoryCode); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCompanyAndSKU(ctx, companyID, productSKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.UnitMeasure == "" {
		in.UnitMeasure = "94"
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		SKU:             productSKU,
		Supplier:        supplier,
		SupplierSKU:     strings.TrimSpace(in.SupplierSKU),
		Name:            in.Name,
		Description:     in.Description,
		Brand:           in.Brand,
		CategoryCode:    in.CategoryCode,
		SubCategoryCode: in.SubCategoryCode,
		Price:           in.Price,
		Cost:            decimal.Zero,
		UnitMeasure:     in.UnitMeasure,
		ImageURL:        in.ImageURL,
		Attributes:      in.Attributes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe o pertenece a otra empresa.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. SKU y Cost no se modifican por esta vía.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.CategoryCode != nil {
		product.CategoryCode = *in.CategoryCode
	}
	if in.SubCategoryCode != nil {
		product.SubCategoryCode = *in.SubCategoryCode
	}
	if in.CategoryCode != nil || in.SubCategoryCode != nil {
		if err := validateClassification(product.CategoryCode, product.SubCategoryCode); err != nil {
			return nil, err
		}
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.UnitMeasure != nil {
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if len(in.Attributes) > 0 {
		product.Attributes = in.Attributes
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto de la empresa. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func validateClassification(categoryCode, subCategoryCode string) error {
	if !catalog.IsValidCategoryCode(categoryCode) {
		return domain.ErrInvalidCategory
	}
	if subCategoryCode == "" {
		return nil
	}
	if !catalog.IsValidSubCategoryCode(subCategoryCode) || !strings.HasPrefix(subCategoryCode, categoryCode+"-") {
		return domain.ErrInvalidSubCategory
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	score := catalog.Completeness(appcatalog.CompletenessFields(p))
	return &dto.ProductResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		SKU:             p.SKU,
		Supplier:        p.Supplier,
		SupplierSKU:     p.SupplierSKU,
		Name:            p.Name,
		Description:     p.Description,
		Brand:           p.Brand,
		CategoryCode:    p.CategoryCode,
		SubCategoryCode: p.SubCategoryCode,
		Price:           p.Price,
		Cost:            p.Cost,
		UnitMeasure:     p.UnitMeasure,
		ImageURL:        p.ImageURL,
		Attributes:      p.Attributes,
		Completeness:    dto.CompletenessResponse{Score: score.Value, Missing: score.Missing},
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
