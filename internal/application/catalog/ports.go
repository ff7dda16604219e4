// Package catalog casos de uso de la taxonomía: seed en base de datos, importación de
// productos desde feeds de proveedores y migración de códigos heredados.
package catalog

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-industrial/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a esa tx.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ImportRow fila normalizada de un archivo de importación (Excel, CSV o feed XML).
// SubCategory puede traer un código X-NNN, un código heredado o el nombre de la subcategoría.
type ImportRow struct {
	Row          int // número de fila (o de artículo) en el origen, para reportes
	SKU          string
	Supplier     string
	SupplierSKU  string
	Name         string
	Description  string
	Brand        string
	CategoryCode string
	SubCategory  string
	Price        decimal.Decimal
	UnitMeasure  string
	ImageURL     string
	Attributes   json.RawMessage
	// ParseErr error de lectura de la fila (ej. precio ilegible); la fila se reporta y no se importa.
	ParseErr error
}

// RowReader fuente de filas de importación.
type RowReader interface {
	// Source identifica el origen (nombre de archivo, feed) en logs y respuestas.
	Source() string
	ReadRows(ctx context.Context) ([]ImportRow, error)
}
