package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// CategoryCode/SubCategoryCode pueden contener códigos heredados hasta que se ejecute la migración.
type Product struct {
	ID              string
	CompanyID       string
	SKU             string // código interno, único por empresa
	Supplier        string // ej. "tecom"; vacío si es propio
	SupplierSKU     string // código original del proveedor
	Name            string
	Description     string
	Brand           string
	CategoryCode    string
	SubCategoryCode string
	Price           decimal.Decimal // precio de venta
	Cost            decimal.Decimal
	UnitMeasure     string
	ImageURL        string
	Attributes      json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
