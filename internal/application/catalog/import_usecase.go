package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
	"github.com/jhoicas/catalogo-industrial/internal/domain/sku"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

// Estados por fila de una importación.
const (
	RowCreated = "created"
	RowUpdated = "updated"
	RowReview  = "review"
	RowError   = "error"
)

// Códigos de error por fila.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnsupportedPrefix = "UNSUPPORTED_PREFIX"
	CodeMissingSKU        = "MISSING_SKU"
	CodeMissingName       = "MISSING_NAME"
	CodeInvalidCategory   = "INVALID_CATEGORY"
	CodeDuplicateSKU      = "DUPLICATE_SKU"
	CodeUnresolvedSub     = "UNRESOLVED_SUBCATEGORY"
)

// ImportRequest parámetros de una importación.
type ImportRequest struct {
	Reader          RowReader
	DefaultSupplier string // se aplica a filas sin proveedor
	DryRun          bool   // valida y reporta sin escribir
}

// ImportUseCase importa productos desde un RowReader.
//
// Las filas inválidas (SKU Tecom mal formado, categoría inexistente, ...) se reportan
// como error y el lote continúa. Un error de base de datos aborta el lote completo.
type ImportUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner TxRunner, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, log: log.Component("catalog_import"), now: time.Now}
}

type preparedRow struct {
	result  dto.ImportRowResponse
	product *entity.Product // nil si la fila tiene error
}

// Import lee las filas, las valida y hace upsert por (empresa, SKU).
func (uc *ImportUseCase) Import(ctx context.Context, companyID string, req ImportRequest) (*dto.ImportResponse, error) {
	if companyID == "" || req.Reader == nil {
		return nil, domain.ErrInvalidInput
	}
	rows, err := req.Reader.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", req.Reader.Source(), err)
	}

	defaultSupplier := strings.ToLower(strings.TrimSpace(req.DefaultSupplier))
	prepared := make([]preparedRow, 0, len(rows))
	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		p := uc.prepare(companyID, row, defaultSupplier)
		if p.product != nil {
			if first, dup := seen[p.product.SKU]; dup {
				p = rowError(row.Row, p.product.SKU, CodeDuplicateSKU, fmt.Sprintf("SKU repetido (fila %d)", first))
			} else {
				seen[p.product.SKU] = row.Row
			}
		}
		prepared = append(prepared, p)
	}

	err = uc.txRunner.RunCatalog(ctx, func(_ repository.CategoryRepository, productRepo repository.ProductRepository) error {
		for i := range prepared {
			if prepared[i].product == nil {
				continue
			}
			status, err := uc.upsert(ctx, productRepo, prepared[i].product, req.DryRun)
			if err != nil {
				return fmt.Errorf("fila %d (SKU %s): %w", prepared[i].result.Row, prepared[i].product.SKU, err)
			}
			if prepared[i].result.Status == "" {
				prepared[i].result.Status = status
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("source", req.Reader.Source()).Msg("importación abortada")
		return nil, err
	}

	out := &dto.ImportResponse{
		Source: req.Reader.Source(),
		DryRun: req.DryRun,
		Total:  len(prepared),
		Rows:   make([]dto.ImportRowResponse, 0, len(prepared)),
	}
	for _, p := range prepared {
		switch p.result.Status {
		case RowCreated:
			out.Created++
		case RowUpdated:
			out.Updated++
		case RowReview:
			out.Review++
		case RowError:
			out.Errors++
		}
		out.Rows = append(out.Rows, p.result)
	}

	uc.log.Info().
		Str("source", out.Source).
		Str("company_id", companyID).
		Bool("dry_run", out.DryRun).
		Int("total", out.Total).
		Int("created", out.Created).
		Int("updated", out.Updated).
		Int("review", out.Review).
		Int("errors", out.Errors).
		Msg("importación finalizada")
	return out, nil
}

// prepare valida una fila y construye el producto candidato. No toca la base de datos.
func (uc *ImportUseCase) prepare(companyID string, row ImportRow, defaultSupplier string) preparedRow {
	if row.ParseErr != nil {
		return rowError(row.Row, strings.TrimSpace(row.SKU), CodeInvalidInput, row.ParseErr.Error())
	}
	supplier := strings.ToLower(strings.TrimSpace(row.Supplier))
	if supplier == "" {
		supplier = defaultSupplier
	}
	supplierSKU := strings.TrimSpace(row.SupplierSKU)

	internalSKU := strings.TrimSpace(row.SKU)
	if internalSKU == "" {
		if supplier != sku.SupplierTecom {
			return rowError(row.Row, "", CodeMissingSKU, "la fila no trae SKU interno")
		}
		converted, err := sku.ConvertTecomSKU(supplierSKU)
		if err != nil {
			return rowError(row.Row, supplierSKU, skuErrorCode(err), err.Error())
		}
		internalSKU = converted
	}

	name := strings.TrimSpace(row.Name)
	if name == "" {
		return rowError(row.Row, internalSKU, CodeMissingName, "el nombre es obligatorio")
	}

	categoryCode := strings.TrimSpace(row.CategoryCode)
	if !domaincatalog.IsValidCategoryCode(categoryCode) {
		return rowError(row.Row, internalSKU, CodeInvalidCategory, fmt.Sprintf("categoría %q no existe", row.CategoryCode))
	}

	result := dto.ImportRowResponse{Row: row.Row, SKU: internalSKU}
	subCategoryCode, ok := domaincatalog.ResolveSubCategory(categoryCode, row.SubCategory)
	if !ok {
		result.Status = RowReview
		result.Code = CodeUnresolvedSub
		result.Message = fmt.Sprintf("subcategoría %q sin resolver en %s", row.SubCategory, categoryCode)
	}

	now := uc.now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		SKU:             internalSKU,
		Supplier:        supplier,
		SupplierSKU:     supplierSKU,
		Name:            name,
		Description:     strings.TrimSpace(row.Description),
		Brand:           strings.TrimSpace(row.Brand),
		CategoryCode:    categoryCode,
		SubCategoryCode: subCategoryCode,
		Price:           row.Price,
		Cost:            decimal.Zero,
		UnitMeasure:     strings.TrimSpace(row.UnitMeasure),
		ImageURL:        strings.TrimSpace(row.ImageURL),
		Attributes:      row.Attributes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if product.UnitMeasure == "" {
		product.UnitMeasure = "94" // unidad
	}

	score := domaincatalog.Completeness(CompletenessFields(product))
	result.Completeness = score.Value
	result.Missing = score.Missing
	return preparedRow{result: result, product: product}
}

// upsert crea o actualiza el producto. Conserva ID, Cost y CreatedAt del existente.
func (uc *ImportUseCase) upsert(ctx context.Context, repo repository.ProductRepository, p *entity.Product, dryRun bool) (string, error) {
	existing, err := repo.GetByCompanyAndSKU(ctx, p.CompanyID, p.SKU)
	if err != nil {
		return "", err
	}
	if existing == nil {
		if !dryRun {
			if err := repo.Create(ctx, p); err != nil {
				return "", err
			}
		}
		return RowCreated, nil
	}
	p.ID = existing.ID
	p.Cost = existing.Cost
	p.CreatedAt = existing.CreatedAt
	if len(p.Attributes) == 0 {
		p.Attributes = existing.Attributes
	}
	if !dryRun {
		if err := repo.Update(ctx, p); err != nil {
			return "", err
		}
	}
	return RowUpdated, nil
}

func rowError(row int, rowSKU, code, msg string) preparedRow {
	return preparedRow{result: dto.ImportRowResponse{
		Row:     row,
		SKU:     rowSKU,
		Status:  RowError,
		Code:    code,
		Message: msg,
	}}
}

func skuErrorCode(err error) string {
	if errors.Is(err, domain.ErrUnsupportedPrefix) {
		return CodeUnsupportedPrefix
	}
	return CodeInvalidInput
}

// CompletenessFields adapta un producto a la lista de chequeo de completitud.
func CompletenessFields(p *entity.Product) domaincatalog.ProductFields {
	return domaincatalog.ProductFields{
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		CategoryCode:    p.CategoryCode,
		SubCategoryCode: p.SubCategoryCode,
		ImageURL:        p.ImageURL,
		Brand:           p.Brand,
		UnitMeasure:     p.UnitMeasure,
		SupplierSKU:     p.SupplierSKU,
		Attributes:      p.Attributes,
	}
}
