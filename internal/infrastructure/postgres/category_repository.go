package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia de la taxonomía.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// UpsertCategory inserta o actualiza una categoría por código.
func (r *CategoryRepo) UpsertCategory(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (code, name, sort_order, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, sort_order = EXCLUDED.sort_order, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, c.Code, c.Name, c.SortOrder, c.UpdatedAt); err != nil {
		return fmt.Errorf("upsert category %s: %w", c.Code, err)
	}
	return nil
}

// UpsertSubCategory inserta o actualiza una subcategoría por código.
func (r *CategoryRepo) UpsertSubCategory(ctx context.Context, s *entity.SubCategory) error {
	query := `
		INSERT INTO subcategories (code, category_code, name, sort_order, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE
		SET category_code = EXCLUDED.category_code, name = EXCLUDED.name,
		    sort_order = EXCLUDED.sort_order, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, s.Code, s.CategoryCode, s.Name, s.SortOrder, s.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: subcategoría %s apunta a %q", domain.ErrInvalidCategory, s.Code, s.CategoryCode)
		}
		return fmt.Errorf("upsert subcategory %s: %w", s.Code, err)
	}
	return nil
}

// ListCategories lista las categorías persistidas por sort_order.
func (r *CategoryRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT code, name, sort_order, updated_at FROM categories ORDER BY sort_order, code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.Code, &c.Name, &c.SortOrder, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListSubCategories lista las subcategorías de una categoría por sort_order.
func (r *CategoryRepo) ListSubCategories(ctx context.Context, categoryCode string) ([]*entity.SubCategory, error) {
	query := `
		SELECT code, category_code, name, sort_order, updated_at
		FROM subcategories WHERE category_code = $1 ORDER BY sort_order, code`
	rows, err := r.q.Query(ctx, query, categoryCode)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategory
	for rows.Next() {
		var s entity.SubCategory
		if err := rows.Scan(&s.Code, &s.CategoryCode, &s.Name, &s.SortOrder, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
