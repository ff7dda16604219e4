package catalog

import (
	"regexp"
	"strings"
)

// subCategoryCodePattern una letra mayúscula, guion y exactamente tres dígitos.
var subCategoryCodePattern = regexp.MustCompile(`^([A-Z])-[0-9]{3}$`)

var (
	categoryIndex    map[string]int      // código de categoría -> posición en definitions
	subCategoryIndex map[string]struct{} // códigos de subcategoría existentes
)

func init() {
	categoryIndex = make(map[string]int, len(definitions))
	subCategoryIndex = make(map[string]struct{})
	for i, c := range definitions {
		categoryIndex[c.Code] = i
		for _, s := range c.SubCategories {
			subCategoryIndex[s.Code] = struct{}{}
		}
	}
}

// Definitions devuelve una copia de la taxonomía completa en orden de visualización.
func Definitions() []Category {
	out := make([]Category, len(definitions))
	for i, c := range definitions {
		out[i] = c.clone()
	}
	return out
}

// LookupCategory busca una categoría por código exacto.
func LookupCategory(code string) (Category, bool) {
	i, ok := categoryIndex[code]
	if !ok {
		return Category{}, false
	}
	return definitions[i].clone(), true
}

// NormalizeSubCategoryName clave de comparación para nombres de subcategoría:
// minúsculas, "_" y "-" como espacio, espacios colapsados y sin bordes.
// No debe usarse para mostrar.
func NormalizeSubCategoryName(name string) string {
	s := strings.ToLower(name)
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// FindSubCategoryCode busca por nombre normalizado dentro de la categoría.
// Devuelve false si la categoría no existe o ningún nombre coincide.
func FindSubCategoryCode(categoryCode, name string) (string, bool) {
	i, ok := categoryIndex[categoryCode]
	if !ok {
		return "", false
	}
	key := NormalizeSubCategoryName(name)
	for _, s := range definitions[i].SubCategories {
		if NormalizeSubCategoryName(s.Name) == key {
			return s.Code, true
		}
	}
	return "", false
}

// SubCategoriesFor devuelve las subcategorías ordenadas de la categoría.
// Para una categoría desconocida devuelve un slice vacío (nunca nil).
func SubCategoriesFor(categoryCode string) []SubCategory {
	i, ok := categoryIndex[categoryCode]
	if !ok {
		return []SubCategory{}
	}
	return append([]SubCategory{}, definitions[i].SubCategories...)
}

// IsValidCategoryCode true si code es exactamente uno de los códigos de categoría.
func IsValidCategoryCode(code string) bool {
	_, ok := categoryIndex[code]
	return ok
}

// IsValidSubCategoryCode valida formato X-NNN y existencia dentro de la categoría X.
func IsValidSubCategoryCode(code string) bool {
	m := subCategoryCodePattern.FindStringSubmatch(code)
	if m == nil {
		return false
	}
	if !IsValidCategoryCode(m[1]) {
		return false
	}
	_, ok := subCategoryIndex[code]
	return ok
}

// ResolveSubCategory resuelve value a un código de subcategoría de categoryCode.
// Acepta, en orden: un código válido de esa categoría, un código heredado de la tabla
// de migración que pertenezca a la categoría, o el nombre de la subcategoría.
func ResolveSubCategory(categoryCode, value string) (string, bool) {
	if !IsValidCategoryCode(categoryCode) {
		return "", false
	}
	v := strings.TrimSpace(value)
	if v == "" {
		return "", false
	}
	if IsValidSubCategoryCode(v) {
		if strings.HasPrefix(v, categoryCode+"-") {
			return v, true
		}
		return "", false
	}
	if migrated, ok := MigrateSubCategoryCode(v); ok && strings.HasPrefix(migrated, categoryCode+"-") {
		return migrated, true
	}
	return FindSubCategoryCode(categoryCode, v)
}
