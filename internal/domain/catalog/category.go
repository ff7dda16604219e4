// Package catalog contiene la taxonomía fija del catálogo (categorías y subcategorías),
// las tablas de migración de códigos heredados y el puntaje de completitud de productos.
package catalog

// Category categoría de primer nivel. Code es una sola letra mayúscula.
type Category struct {
	Code          string
	Name          string
	SortOrder     int
	SubCategories []SubCategory
}

// SubCategory subcategoría de una Category. Code sigue el formato <Categoría>-NNN (ej. C-013).
type SubCategory struct {
	Code      string
	Name      string
	SortOrder int
}

// CategoryCode devuelve la letra de categoría del código de subcategoría.
func (s SubCategory) CategoryCode() string {
	if len(s.Code) == 0 {
		return ""
	}
	return s.Code[:1]
}

func (c Category) clone() Category {
	out := c
	out.SubCategories = append([]SubCategory(nil), c.SubCategories...)
	return out
}
