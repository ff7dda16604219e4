// Package importer lectores de archivos de importación de productos (Excel, CSV y el
// feed XML de Tecom). Todos implementan catalog.RowReader.
package importer

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

// Columnas lógicas de una planilla de importación.
const (
	colSKU         = "sku"
	colSupplier    = "supplier"
	colSupplierSKU = "supplier_sku"
	colName        = "name"
	colDescription = "description"
	colBrand       = "brand"
	colCategory    = "category"
	colSubCategory = "subcategory"
	colPrice       = "price"
	colUnit        = "unit_measure"
	colImage       = "image_url"
	colAttributes  = "attributes"
)

// headerAliases encabezados aceptados (ya normalizados) por columna lógica.
var headerAliases = map[string]string{
	"sku":              colSKU,
	"codigo":           colSKU,
	"codigo_interno":   colSKU,
	"supplier":         colSupplier,
	"proveedor":        colSupplier,
	"supplier_sku":     colSupplierSKU,
	"codigo_proveedor": colSupplierSKU,
	"referencia":       colSupplierSKU,
	"ref_proveedor":    colSupplierSKU,
	"name":             colName,
	"nombre":           colName,
	"description":      colDescription,
	"descripcion":      colDescription,
	"brand":            colBrand,
	"marca":            colBrand,
	"category":         colCategory,
	"category_code":    colCategory,
	"categoria":        colCategory,
	"subcategory":      colSubCategory,
	"subcategory_code": colSubCategory,
	"subcategoria":     colSubCategory,
	"price":            colPrice,
	"precio":           colPrice,
	"unit_measure":     colUnit,
	"unidad":           colUnit,
	"unidad_medida":    colUnit,
	"image_url":        colImage,
	"imagen":           colImage,
	"attributes":       colAttributes,
	"atributos":        colAttributes,
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader "Código Proveedor" -> "codigo_proveedor".
func normalizeHeader(h string) string {
	s, _, err := transform.String(stripAccents, h)
	if err != nil {
		s = h
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", ".", " ", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}

// columnIndex mapea columna lógica -> índice a partir de la fila de encabezados.
// Requiere al menos nombre y categoría.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if col, ok := headerAliases[normalizeHeader(h)]; ok {
			if _, dup := idx[col]; !dup {
				idx[col] = i
			}
		}
	}
	for _, required := range []string{colName, colCategory} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q en el encabezado", domain.ErrInvalidInput, required)
		}
	}
	if _, hasSKU := idx[colSKU]; !hasSKU {
		if _, hasSupplierSKU := idx[colSupplierSKU]; !hasSupplierSKU {
			return nil, fmt.Errorf("%w: se requiere la columna %q o %q", domain.ErrInvalidInput, colSKU, colSupplierSKU)
		}
	}
	return idx, nil
}

// buildRow arma una ImportRow a partir de las celdas de una fila.
func buildRow(rowNumber int, cells []string, idx map[string]int) appcatalog.ImportRow {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	row := appcatalog.ImportRow{
		Row:          rowNumber,
		SKU:          get(colSKU),
		Supplier:     get(colSupplier),
		SupplierSKU:  get(colSupplierSKU),
		Name:         get(colName),
		Description:  get(colDescription),
		Brand:        get(colBrand),
		CategoryCode: get(colCategory),
		SubCategory:  get(colSubCategory),
		UnitMeasure:  get(colUnit),
		ImageURL:     get(colImage),
	}
	price, err := parsePrice(get(colPrice))
	if err != nil {
		row.ParseErr = err
	}
	row.Price = price
	if raw := get(colAttributes); raw != "" {
		if !json.Valid([]byte(raw)) {
			row.ParseErr = fmt.Errorf("atributos no son JSON válido")
		} else {
			row.Attributes = json.RawMessage(raw)
		}
	}
	return row
}

// parsePrice acepta "1234.5", "1234,5", "1.234,50" y "1,234.50". El último separador
// presente es el decimal. Una sola coma seguida de exactamente tres dígitos ("12,000")
// es ambigua y se rechaza. Vacío es cero.
func parsePrice(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		switch {
		case strings.Count(s, ",") > 1:
			s = strings.ReplaceAll(s, ",", "")
		case len(s)-lastComma-1 == 3:
			return decimal.Zero, fmt.Errorf("precio %q ambiguo: use separador decimal explícito", raw)
		default:
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio %q inválido", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("precio %s negativo", d)
	}
	return d, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
