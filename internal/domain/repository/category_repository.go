package repository

import (
	"context"

	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia de la taxonomía (DIP).
type CategoryRepository interface {
	UpsertCategory(ctx context.Context, category *entity.Category) error
	UpsertSubCategory(ctx context.Context, sub *entity.SubCategory) error
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListSubCategories(ctx context.Context, categoryCode string) ([]*entity.SubCategory, error)
}
