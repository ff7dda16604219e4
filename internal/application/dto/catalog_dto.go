package dto

// SubCategoryResponse subcategoría de la taxonomía.
type SubCategoryResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// CategoryResponse categoría con sus subcategorías.
type CategoryResponse struct {
	Code          string                `json:"code"`
	Name          string                `json:"name"`
	SortOrder     int                   `json:"sort_order"`
	SubCategories []SubCategoryResponse `json:"subcategories"`
}

// ResolveSubCategoryResponse resultado de resolver una subcategoría por nombre.
type ResolveSubCategoryResponse struct {
	CategoryCode    string `json:"category_code"`
	Name            string `json:"name"`
	SubCategoryCode string `json:"subcategory_code"`
}

// ValidateCodesResponse resultado de validar códigos de categoría/subcategoría.
type ValidateCodesResponse struct {
	CategoryCode          string `json:"category_code"`
	CategoryValid         bool   `json:"category_valid"`
	SubCategoryCode       string `json:"subcategory_code,omitempty"`
	SubCategoryValid      bool   `json:"subcategory_valid"`
	SubCategoryInCategory bool   `json:"subcategory_in_category"`
}

// ConvertSKURequest entrada para convertir un SKU de proveedor.
type ConvertSKURequest struct {
	SupplierSKU string `json:"supplier_sku" validate:"required"`
}

// ConvertSKUResponse SKU interno resultante.
type ConvertSKUResponse struct {
	SupplierSKU string `json:"supplier_sku"`
	InternalSKU string `json:"internal_sku"`
}

// SeedResponse resultado del seed de la taxonomía.
type SeedResponse struct {
	Categories    int `json:"categories"`
	SubCategories int `json:"subcategories"`
}

// ImportRowResponse resultado por fila de una importación.
type ImportRowResponse struct {
	Row          int      `json:"row"`
	SKU          string   `json:"sku,omitempty"`
	Status       string   `json:"status"` // created, updated, review, error
	Code         string   `json:"code,omitempty"`
	Message      string   `json:"message,omitempty"`
	Completeness int      `json:"completeness"`
	Missing      []string `json:"missing,omitempty"`
}

// ImportResponse resumen de una importación.
type ImportResponse struct {
	Source  string              `json:"source"`
	DryRun  bool                `json:"dry_run"`
	Total   int                 `json:"total"`
	Created int                 `json:"created"`
	Updated int                 `json:"updated"`
	Review  int                 `json:"review"`
	Errors  int                 `json:"errors"`
	Rows    []ImportRowResponse `json:"rows"`
}

// MigrationChangeResponse un producto reclasificado (o que no se pudo reclasificar).
type MigrationChangeResponse struct {
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku"`
	FromCategory    string `json:"from_category"`
	ToCategory      string `json:"to_category,omitempty"`
	FromSubCategory string `json:"from_subcategory"`
	ToSubCategory   string `json:"to_subcategory,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

// MigrationResponse resumen de la migración de códigos heredados.
type MigrationResponse struct {
	DryRun     bool                      `json:"dry_run"`
	Checked    int                       `json:"checked"`
	Updated    int                       `json:"updated"`
	Unchanged  int                       `json:"unchanged"`
	Unresolved int                       `json:"unresolved"`
	Changes    []MigrationChangeResponse `json:"changes"`
	Pending    []MigrationChangeResponse `json:"pending"`
}
