package catalog

import "strings"

// Reclassification resultado de traducir una clasificación heredada a códigos vigentes.
// Si Resolved es false, CategoryCode/SubCategoryCode no deben persistirse y Reason explica el motivo.
type Reclassification struct {
	CategoryCode    string
	SubCategoryCode string
	Resolved        bool
	Reason          string
}

// Reclassify traduce un par (categoría, subcategoría) posiblemente heredado.
// La categoría se corrige con la tabla de migración; la subcategoría con ResolveSubCategory.
// Una subcategoría vacía se conserva vacía.
func Reclassify(categoryCode, subCategoryCode string) Reclassification {
	cat := strings.TrimSpace(categoryCode)
	if !IsValidCategoryCode(cat) {
		if migrated, ok := MigrateCategoryCode(cat); ok {
			cat = migrated
		} else if upper := strings.ToUpper(cat); IsValidCategoryCode(upper) {
			cat = upper
		} else {
			return Reclassification{Reason: "categoría sin equivalencia: " + categoryCode}
		}
	}

	sub := strings.TrimSpace(subCategoryCode)
	if sub == "" {
		return Reclassification{CategoryCode: cat, Resolved: true}
	}
	resolved, ok := ResolveSubCategory(cat, sub)
	if !ok {
		if IsValidSubCategoryCode(sub) {
			return Reclassification{Reason: "la subcategoría " + sub + " no pertenece a la categoría " + cat}
		}
		return Reclassification{Reason: "subcategoría sin equivalencia: " + subCategoryCode}
	}
	return Reclassification{CategoryCode: cat, SubCategoryCode: resolved, Resolved: true}
}
