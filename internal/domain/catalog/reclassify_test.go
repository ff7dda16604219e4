package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-industrial/internal/domain/catalog"
)

func TestReclassify(t *testing.T) {
	cases := []struct {
		name     string
		cat, sub string
		wantCat  string
		wantSub  string
		resolved bool
	}{
		{"ya vigente", "C", "C-013", "C", "C-013", true},
		{"categoría heredada y código simbólico", "CONV", "SIDE_GUIDE_ACC", "C", "C-013", true},
		{"renombre histórico", "FEET", "LEVELLING_FEET", "L", "L-001", true},
		{"match por nombre", "LEV", "swivel-feet", "L", "L-002", true},
		{"categoría en minúscula", "c", "C-001", "C", "C-001", true},
		{"subcategoría vacía", "BEAR", "", "B", "", true},
		{"categoría desconocida", "XYZ", "C-013", "", "", false},
		{"subcategoría de otra categoría", "L", "C-013", "", "", false},
		{"subcategoría sin equivalencia", "C", "Rodillos raros", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := catalog.Reclassify(tc.cat, tc.sub)
			assert.Equal(t, tc.resolved, r.Resolved)
			assert.Equal(t, tc.wantCat, r.CategoryCode)
			assert.Equal(t, tc.wantSub, r.SubCategoryCode)
			if !tc.resolved {
				assert.NotEmpty(t, r.Reason)
			}
		})
	}
}
