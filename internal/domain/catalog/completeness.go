package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Claves de los campos evaluados por Completeness.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldSubCategory = "subcategory"
	FieldImage       = "image"
	FieldBrand       = "brand"
	FieldUnitMeasure = "unit_measure"
	FieldSupplierSKU = "supplier_sku"
	FieldAttributes  = "attributes"
)

// ProductFields datos de un producto relevantes para la completitud de su ficha.
type ProductFields struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	CategoryCode    string
	SubCategoryCode string
	ImageURL        string
	Brand           string
	UnitMeasure     string
	SupplierSKU     string
	Attributes      json.RawMessage
}

// Score resultado de Completeness. Value va de 0 a 100.
type Score struct {
	Value   int
	Missing []string
}

// Complete true si la ficha no tiene campos pendientes.
func (s Score) Complete() bool { return len(s.Missing) == 0 }

type completenessCheck struct {
	field  string
	weight int
	ok     func(p ProductFields) bool
}

// completenessChecks suma 100.
var completenessChecks = []completenessCheck{
	{FieldName, 15, func(p ProductFields) bool { return notBlank(p.Name) }},
	{FieldDescription, 15, func(p ProductFields) bool { return notBlank(p.Description) }},
	{FieldPrice, 15, func(p ProductFields) bool { return p.Price.IsPositive() }},
	{FieldCategory, 10, func(p ProductFields) bool { return IsValidCategoryCode(p.CategoryCode) }},
	{FieldSubCategory, 10, func(p ProductFields) bool {
		return IsValidSubCategoryCode(p.SubCategoryCode) && strings.HasPrefix(p.SubCategoryCode, p.CategoryCode+"-")
	}},
	{FieldImage, 15, func(p ProductFields) bool { return notBlank(p.ImageURL) }},
	{FieldBrand, 5, func(p ProductFields) bool { return notBlank(p.Brand) }},
	{FieldUnitMeasure, 5, func(p ProductFields) bool { return notBlank(p.UnitMeasure) }},
	{FieldSupplierSKU, 5, func(p ProductFields) bool { return notBlank(p.SupplierSKU) }},
	{FieldAttributes, 5, func(p ProductFields) bool { return hasAttributes(p.Attributes) }},
}

// Completeness calcula el puntaje ponderado de la ficha del producto.
// Missing conserva el orden de la lista de chequeo.
func Completeness(p ProductFields) Score {
	score := Score{Missing: []string{}}
	for _, c := range completenessChecks {
		if c.ok(p) {
			score.Value += c.weight
			continue
		}
		score.Missing = append(score.Missing, c.field)
	}
	return score
}

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }

// hasAttributes acepta cualquier JSON salvo null, {} y [].
func hasAttributes(raw json.RawMessage) bool {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
