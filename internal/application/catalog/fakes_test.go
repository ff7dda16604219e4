package catalog_test

import (
	"context"
	"errors"
	"sync"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

var errDB = errors.New("conexión perdida")

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.Product
	order   []string
	failSKU string // Create/Update fallan para este SKU
	updates int
	reclass int
}

func newMemProductRepo(seed ...*entity.Product) *memProductRepo {
	r := &memProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range seed {
		cp := *p
		r.byID[p.ID] = &cp
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.SKU == r.failSKU {
		return errDB
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		p := r.byID[id]
		if p.CompanyID == companyID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.SKU == r.failSKU {
		return errDB
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.updates++
	return nil
}

func (r *memProductRepo) UpdateClassification(_ context.Context, id, cat, sub string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return errors.New("no existe")
	}
	p.CategoryCode = cat
	p.SubCategoryCode = sub
	r.reclass++
	return nil
}

func (r *memProductRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Product
	for _, id := range r.order {
		if p := r.byID[id]; p.CompanyID == companyID {
			cp := *p
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *memProductRepo) bySKU(sku string) *entity.Product {
	p, _ := r.GetByCompanyAndSKU(context.Background(), testCompanyID, sku)
	return p
}

type memCategoryRepo struct {
	categories    map[string]*entity.Category
	subcategories map[string]*entity.SubCategory
	failCode      string
	dropCode      string // upsert aceptado pero no persistido
	listErr       error
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}, subcategories: map[string]*entity.SubCategory{}}
}

func (r *memCategoryRepo) UpsertCategory(_ context.Context, c *entity.Category) error {
	if c.Code == r.failCode {
		return errDB
	}
	if c.Code == r.dropCode {
		return nil
	}
	cp := *c
	r.categories[c.Code] = &cp
	return nil
}

func (r *memCategoryRepo) UpsertSubCategory(_ context.Context, s *entity.SubCategory) error {
	if s.Code == r.failCode {
		return errDB
	}
	if s.Code == r.dropCode {
		return nil
	}
	cp := *s
	r.subcategories[s.Code] = &cp
	return nil
}

func (r *memCategoryRepo) ListCategories(context.Context) ([]*entity.Category, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) ListSubCategories(_ context.Context, categoryCode string) ([]*entity.SubCategory, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.SubCategory
	for _, s := range r.subcategories {
		if s.CategoryCode == categoryCode {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTx ejecuta fn sin transacción real.
type fakeTx struct {
	categories *memCategoryRepo
	products   *memProductRepo
	calls      int
}

var _ appcatalog.TxRunner = (*fakeTx)(nil)

func (f *fakeTx) RunCatalog(_ context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	f.calls++
	return fn(f.categories, f.products)
}

// sliceReader RowReader sobre un slice fijo.
type sliceReader struct {
	rows []appcatalog.ImportRow
	err  error
}

func (r sliceReader) Source() string { return "test.xlsx" }

func (r sliceReader) ReadRows(context.Context) ([]appcatalog.ImportRow, error) {
	return r.rows, r.err
}
