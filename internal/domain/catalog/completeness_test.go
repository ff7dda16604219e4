package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
)

func fullProduct() catalog.ProductFields {
	return catalog.ProductFields{
		Name:            "Fixed foot M16x100",
		Description:     "Pie fijo de acero inoxidable",
		Price:           decimal.NewFromInt(12500),
		CategoryCode:    "L",
		SubCategoryCode: "L-001",
		ImageURL:        "https://cdn.example.com/l-001.jpg",
		Brand:           "Tecom",
		UnitMeasure:     "94",
		SupplierSKU:     "L008580271",
		Attributes:      json.RawMessage(`{"thread":"M16"}`),
	}
}

func TestCompleteness_FichaCompleta(t *testing.T) {
	s := catalog.Completeness(fullProduct())
	assert.Equal(t, 100, s.Value)
	assert.Empty(t, s.Missing)
	assert.True(t, s.Complete())
}

func TestCompleteness_FichaVacia(t *testing.T) {
	s := catalog.Completeness(catalog.ProductFields{})
	assert.Equal(t, 0, s.Value)
	assert.Equal(t, []string{
		catalog.FieldName, catalog.FieldDescription, catalog.FieldPrice, catalog.FieldCategory,
		catalog.FieldSubCategory, catalog.FieldImage, catalog.FieldBrand, catalog.FieldUnitMeasure,
		catalog.FieldSupplierSKU, catalog.FieldAttributes,
	}, s.Missing)
	assert.False(t, s.Complete())
}

func TestCompleteness_PesosParciales(t *testing.T) {
	p := fullProduct()
	p.ImageURL = " "
	p.Price = decimal.Zero
	s := catalog.Completeness(p)
	assert.Equal(t, 70, s.Value)
	assert.Equal(t, []string{catalog.FieldPrice, catalog.FieldImage}, s.Missing)
}

func TestCompleteness_SubcategoriaDeOtraCategoria(t *testing.T) {
	p := fullProduct()
	p.SubCategoryCode = "C-013"
	s := catalog.Completeness(p)
	assert.Equal(t, 90, s.Value)
	assert.Equal(t, []string{catalog.FieldSubCategory}, s.Missing)
}

func TestCompleteness_AtributosVacios(t *testing.T) {
	for _, raw := range []string{"", "null", "{}", "[]", "{invalid"} {
		p := fullProduct()
		p.Attributes = json.RawMessage(raw)
		s := catalog.Completeness(p)
		assert.Equal(t, 95, s.Value, "atributos %q", raw)
		assert.Equal(t, []string{catalog.FieldAttributes}, s.Missing)
	}
}
