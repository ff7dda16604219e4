package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

// memStore repositorios en memoria compartidos por el TxRunner y los casos de uso.
type memStore struct {
	mu            sync.Mutex
	products      map[string]*entity.Product
	categories    map[string]*entity.Category
	subCategories map[string]*entity.SubCategory
}

func newMemStore(seed ...*entity.Product) *memStore {
	s := &memStore{
		products:      map[string]*entity.Product{},
		categories:    map[string]*entity.Category{},
		subCategories: map[string]*entity.SubCategory{},
	}
	for _, p := range seed {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

// RunCatalog sin transacción real: los tests no ejercitan rollback a este nivel.
func (s *memStore) RunCatalog(_ context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	return fn(memCategories{s}, memProducts{s})
}

type memCategories struct{ s *memStore }

func (r memCategories) UpsertCategory(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.categories[c.Code] = &cp
	return nil
}

func (r memCategories) UpsertSubCategory(_ context.Context, sc *entity.SubCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sc
	r.s.subCategories[sc.Code] = &cp
	return nil
}

func (r memCategories) ListCategories(context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r memCategories) ListSubCategories(_ context.Context, categoryCode string) ([]*entity.SubCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SubCategory
	for _, sc := range r.s.subCategories {
		if sc.CategoryCode == categoryCode {
			out = append(out, sc)
		}
	}
	return out, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProducts) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memProducts) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r memProducts) UpdateClassification(_ context.Context, id, categoryCode, subCategoryCode string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CategoryCode = categoryCode
	p.SubCategoryCode = subCategoryCode
	return nil
}

func (r memProducts) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			cp := *p
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SKU < all[j].SKU })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r memProducts) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (s *memStore) product(companyID, sku string) *entity.Product {
	p, _ := memProducts{s}.GetByCompanyAndSKU(context.Background(), companyID, sku)
	return p
}
