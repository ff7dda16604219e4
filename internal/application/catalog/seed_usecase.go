package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

// SeedUseCase copia la taxonomía estática a la base de datos (upsert por código).
type SeedUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(txRunner TxRunner, log *logger.Logger) *SeedUseCase {
	return &SeedUseCase{txRunner: txRunner, log: log.Component("catalog_seed")}
}

// Seed hace upsert de todas las categorías y subcategorías en una sola transacción.
// Es idempotente: ejecutarlo dos veces deja las mismas filas.
func (uc *SeedUseCase) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	defs := domaincatalog.Definitions()
	now := time.Now()
	out := &dto.SeedResponse{}

	err := uc.txRunner.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, _ repository.ProductRepository) error {
		for _, c := range defs {
			if err := categoryRepo.UpsertCategory(ctx, &entity.Category{
				Code:      c.Code,
				Name:      c.Name,
				SortOrder: c.SortOrder,
				UpdatedAt: now,
			}); err != nil {
				return fmt.Errorf("upsert categoría %s: %w", c.Code, err)
			}
			out.Categories++
			for _, s := range c.SubCategories {
				if err := categoryRepo.UpsertSubCategory(ctx, &entity.SubCategory{
					Code:         s.Code,
					CategoryCode: c.Code,
					Name:         s.Name,
					SortOrder:    s.SortOrder,
					UpdatedAt:    now,
				}); err != nil {
					return fmt.Errorf("upsert subcategoría %s: %w", s.Code, err)
				}
				out.SubCategories++
			}
		}
		return verifySeeded(ctx, categoryRepo, defs)
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("seed de taxonomía fallido")
		return nil, err
	}

	uc.log.Info().
		Int("categories", out.Categories).
		Int("subcategories", out.SubCategories).
		Msg("taxonomía sincronizada")
	return out, nil
}

// verifySeeded relee la taxonomía dentro de la misma transacción y exige que cada
// código definido haya quedado persistido. Filas adicionales en la base no se tocan.
func verifySeeded(ctx context.Context, categoryRepo repository.CategoryRepository, defs []domaincatalog.Category) error {
	cats, err := categoryRepo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("releer categorías: %w", err)
	}
	stored := make(map[string]bool, len(cats))
	for _, c := range cats {
		stored[c.Code] = true
	}
	for _, c := range defs {
		if !stored[c.Code] {
			return fmt.Errorf("%w: categoría %s no quedó persistida", domain.ErrConflict, c.Code)
		}
		subs, err := categoryRepo.ListSubCategories(ctx, c.Code)
		if err != nil {
			return fmt.Errorf("releer subcategorías de %s: %w", c.Code, err)
		}
		storedSubs := make(map[string]bool, len(subs))
		for _, s := range subs {
			storedSubs[s.Code] = true
		}
		for _, s := range c.SubCategories {
			if !storedSubs[s.Code] {
				return fmt.Errorf("%w: subcategoría %s no quedó persistida", domain.ErrConflict, s.Code)
			}
		}
	}
	return nil
}
