package entity

import "time"

// Category fila persistida de la taxonomía (copiada desde la tabla estática por el seed).
type Category struct {
	Code      string // una letra, único
	Name      string
	SortOrder int
	UpdatedAt time.Time
}

// SubCategory fila persistida de una subcategoría; CategoryCode referencia a Category.Code.
type SubCategory struct {
	Code         string // <CategoryCode>-NNN
	CategoryCode string
	Name         string
	SortOrder    int
	UpdatedAt    time.Time
}
