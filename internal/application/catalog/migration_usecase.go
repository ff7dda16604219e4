package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

// migrationPageSize productos leídos por página durante la migración.
const migrationPageSize = 200

// MigrationUseCase reclasifica productos con códigos de categoría/subcategoría heredados.
type MigrationUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	pageSize int
}

// NewMigrationUseCase construye el caso de uso.
func NewMigrationUseCase(txRunner TxRunner, log *logger.Logger) *MigrationUseCase {
	return &MigrationUseCase{txRunner: txRunner, log: log.Component("catalog_migration"), pageSize: migrationPageSize}
}

// Migrate recorre los productos de la empresa y corrige su clasificación en una sola transacción.
// Los productos que no se pueden resolver se dejan intactos y se reportan en Pending.
func (uc *MigrationUseCase) Migrate(ctx context.Context, companyID string, dryRun bool) (*dto.MigrationResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.MigrationResponse{
		DryRun:  dryRun,
		Changes: []dto.MigrationChangeResponse{},
		Pending: []dto.MigrationChangeResponse{},
	}

	err := uc.txRunner.RunCatalog(ctx, func(_ repository.CategoryRepository, productRepo repository.ProductRepository) error {
		for offset := 0; ; offset += uc.pageSize {
			page, err := productRepo.ListByCompany(ctx, companyID, uc.pageSize, offset)
			if err != nil {
				return fmt.Errorf("listar productos: %w", err)
			}
			for _, p := range page {
				out.Checked++
				r := domaincatalog.Reclassify(p.CategoryCode, p.SubCategoryCode)
				change := dto.MigrationChangeResponse{
					ProductID:       p.ID,
					SKU:             p.SKU,
					FromCategory:    p.CategoryCode,
					FromSubCategory: p.SubCategoryCode,
				}
				if !r.Resolved {
					change.Reason = r.Reason
					out.Unresolved++
					out.Pending = append(out.Pending, change)
					continue
				}
				if r.CategoryCode == p.CategoryCode && r.SubCategoryCode == p.SubCategoryCode {
					out.Unchanged++
					continue
				}
				if !dryRun {
					if err := productRepo.UpdateClassification(ctx, p.ID, r.CategoryCode, r.SubCategoryCode); err != nil {
						return fmt.Errorf("actualizar producto %s: %w", p.ID, err)
					}
				}
				change.ToCategory = r.CategoryCode
				change.ToSubCategory = r.SubCategoryCode
				out.Updated++
				out.Changes = append(out.Changes, change)
			}
			if len(page) < uc.pageSize {
				return nil
			}
		}
	})
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Msg("migración de códigos abortada")
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Bool("dry_run", dryRun).
		Int("checked", out.Checked).
		Int("updated", out.Updated).
		Int("unresolved", out.Unresolved).
		Msg("migración de códigos finalizada")
	return out, nil
}
