package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si Supplier es "tecom" y SKU viene vacío, el SKU interno se deriva de SupplierSKU.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Supplier        string          `json:"supplier"`
	SupplierSKU     string          `json:"supplier_sku"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Brand           string          `json:"brand"`
	CategoryCode    string          `json:"category_code" validate:"required,len=1"`
	SubCategoryCode string          `json:"subcategory_code"`
	Price           decimal.Decimal `json:"price"`
	UnitMeasure     string          `json:"unit_measure"`
	ImageURL        string          `json:"image_url"`
	Attributes      json.RawMessage `json:"attributes"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	Brand           *string          `json:"brand"`
	CategoryCode    *string          `json:"category_code"`
	SubCategoryCode *string          `json:"subcategory_code"`
	Price           *decimal.Decimal `json:"price"`
	UnitMeasure     *string          `json:"unit_measure"`
	ImageURL        *string          `json:"image_url"`
	Attributes      json.RawMessage  `json:"attributes"`
}

// CompletenessResponse puntaje de completitud de la ficha.
type CompletenessResponse struct {
	Score   int      `json:"score"`
	Missing []string `json:"missing"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string               `json:"id"`
	CompanyID       string               `json:"company_id"`
	SKU             string               `json:"sku"`
	Supplier        string               `json:"supplier,omitempty"`
	SupplierSKU     string               `json:"supplier_sku,omitempty"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Brand           string               `json:"brand"`
	CategoryCode    string               `json:"category_code"`
	SubCategoryCode string               `json:"subcategory_code"`
	Price           decimal.Decimal      `json:"price"`
	Cost            decimal.Decimal      `json:"cost"`
	UnitMeasure     string               `json:"unit_measure"`
	ImageURL        string               `json:"image_url"`
	Attributes      json.RawMessage      `json:"attributes"`
	Completeness    CompletenessResponse `json:"completeness"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
