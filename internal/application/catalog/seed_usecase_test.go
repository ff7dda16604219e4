package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain/entity"
	"github.com/jhoicas/catalogo-industrial/pkg/logger"
)

func TestSeed_CopiaTaxonomiaCompleta(t *testing.T) {
	cats := newMemCategoryRepo()
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	out, err := uc.Seed(context.Background())
	require.NoError(t, err)

	wantSubs := 0
	for _, c := range domaincatalog.Definitions() {
		wantSubs += len(c.SubCategories)
	}
	assert.Equal(t, 11, out.Categories)
	assert.Equal(t, wantSubs, out.SubCategories)
	assert.Len(t, cats.categories, 11)
	assert.Len(t, cats.subcategories, wantSubs)

	sub := cats.subcategories["C-013"]
	require.NotNil(t, sub)
	assert.Equal(t, "C", sub.CategoryCode)
	assert.Equal(t, "Side guide accessories", sub.Name)
}

func TestSeed_Idempotente(t *testing.T) {
	cats := newMemCategoryRepo()
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	first, err := uc.Seed(context.Background())
	require.NoError(t, err)
	second, err := uc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, cats.categories, 11)
}

func TestSeed_ErrorDeBaseDeDatos(t *testing.T) {
	cats := newMemCategoryRepo()
	cats.failCode = "T-007"
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	_, err := uc.Seed(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDB)
	assert.Contains(t, err.Error(), "T-007")
}

// ─── Relectura tras el upsert ────────────────────────────────────────────────

func TestSeed_SubcategoriaNoPersistida_Error(t *testing.T) {
	cats := newMemCategoryRepo()
	cats.dropCode = "C-013"
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	out, err := uc.Seed(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "C-013")
}

func TestSeed_CategoriaNoPersistida_Error(t *testing.T) {
	cats := newMemCategoryRepo()
	cats.dropCode = "P"
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	_, err := uc.Seed(context.Background())
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "categoría P")
}

func TestSeed_ErrorAlReleer(t *testing.T) {
	cats := newMemCategoryRepo()
	cats.listErr = errDB
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	_, err := uc.Seed(context.Background())
	require.ErrorIs(t, err, errDB)
	assert.Contains(t, err.Error(), "releer categorías")
}

// Filas ajenas a la taxonomía estática no hacen fallar la verificación.
func TestSeed_FilasAdicionalesNoFallan(t *testing.T) {
	cats := newMemCategoryRepo()
	cats.subcategories["C-999"] = &entity.SubCategory{Code: "C-999", CategoryCode: "C", Name: "Legado"}
	uc := appcatalog.NewSeedUseCase(&fakeTx{categories: cats, products: newMemProductRepo()}, logger.Nop())

	_, err := uc.Seed(context.Background())
	require.NoError(t, err)
}
