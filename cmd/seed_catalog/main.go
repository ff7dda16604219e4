// seed_catalog genera el script SQL que puebla categories y subcategories a partir de la
// taxonomía fija del catálogo. El script es idempotente (ON CONFLICT DO UPDATE).
//
// Uso: go run ./cmd/seed_catalog [ruta/salida.sql]
// Escribe por defecto: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
)

func main() {
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	defs := catalog.Definitions()
	w := bufio.NewWriter(out)
	if err := writeSeedSQL(w, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	subs := 0
	for _, c := range defs {
		subs += len(c.SubCategories)
	}
	fmt.Printf("Generado %s: %d categorías, %d subcategorías\n", outPath, len(defs), subs)
}

// writeSeedSQL escribe primero las categorías y luego las subcategorías (FK a categories).
func writeSeedSQL(w io.Writer, defs []catalog.Category) error {
	var b strings.Builder
	b.WriteString("-- Taxonomía del catálogo industrial\n")
	b.WriteString("-- Generado por cmd/seed_catalog; no editar a mano\n\n")

	b.WriteString("-- 1. Categorías\n")
	b.WriteString("INSERT INTO categories (code, name, sort_order) VALUES\n")
	for i, c := range defs {
		fmt.Fprintf(&b, "  ('%s', '%s', %d)", c.Code, escapeSQL(c.Name), c.SortOrder)
		b.WriteString(separator(i, len(defs)))
	}
	b.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, sort_order = EXCLUDED.sort_order, updated_at = NOW();\n\n")

	b.WriteString("-- 2. Subcategorías\n")
	for _, c := range defs {
		if len(c.SubCategories) == 0 {
			continue
		}
		fmt.Fprintf(&b, "-- %s %s\n", c.Code, c.Name)
		b.WriteString("INSERT INTO subcategories (code, category_code, name, sort_order) VALUES\n")
		for i, s := range c.SubCategories {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', %d)", s.Code, c.Code, escapeSQL(s.Name), s.SortOrder)
			b.WriteString(separator(i, len(c.SubCategories)))
		}
		b.WriteString("ON CONFLICT (code) DO UPDATE SET category_code = EXCLUDED.category_code, name = EXCLUDED.name, sort_order = EXCLUDED.sort_order, updated_at = NOW();\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func separator(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return "\n"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
