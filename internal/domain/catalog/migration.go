package catalog

import "maps"

// categoryCodeMigration códigos de categoría históricos (varias letras) -> código actual.
var categoryCodeMigration = map[string]string{
	"CONV":  "C",
	"CONVY": "C",
	"LEV":   "L",
	"FEET":  "L",
	"BEAR":  "B",
	"BRG":   "B",
	"TRANS": "T",
	"TRM":   "T",
	"MOT":   "M",
	"DRV":   "M",
	"PROF":  "P",
	"STR":   "P",
	"SENS":  "S",
	"CTRL":  "S",
	"DRUM":  "D",
	"ROLL":  "D",
	"WEAR":  "W",
	"VAC":   "V",
	"PNEU":  "V",
	"GEN":   "G",
	"HW":    "G",
}

// subCategoryCodeMigration códigos simbólicos heredados -> código X-NNN.
// Cubre los casos donde el match por nombre no funciona (renombres históricos,
// abreviaturas).
var subCategoryCodeMigration = map[string]string{
	"SIDE_GUIDE_ACC":    "C-013",
	"SIDEGUIDE_ACCESS":  "C-013",
	"GUIDE_BRACKETS":    "C-010",
	"GUIDE_CLAMPS":      "C-011",
	"CURVES":            "C-014",
	"BEND_TRACKS":       "C-014",
	"MAG_BENDS":         "C-015",
	"MAGNETIC_CURVES":   "C-015",
	"TOP_CHAINS":        "C-001",
	"LEVELLING_FEET":    "L-001",
	"FIXED_FEET":        "L-001",
	"SWIVEL_FEET":       "L-002",
	"ARTICULATED_FEET":  "L-002",
	"WHEELS":            "L-005",
	"FLANGE_BRG":        "B-002",
	"UCP_BEARINGS":      "B-003",
	"SHAFTS":            "T-007",
	"DRIVE_SHAFTS":      "T-007",
	"VFD":               "M-003",
	"INVERTERS":         "M-003",
	"ALU_PROFILES":      "P-001",
	"CONNECTORS":        "P-002",
	"PHOTOCELLS":        "S-001",
	"MOTORIZED_ROLLERS": "D-005",
	"UHMW":              "W-001",
	"SUCTION_CUPS":      "V-001",
	"FASTENERS":         "G-001",
}

// MigrateCategoryCode traduce un código de categoría heredado.
func MigrateCategoryCode(old string) (string, bool) {
	code, ok := categoryCodeMigration[old]
	return code, ok
}

// MigrateSubCategoryCode traduce un código simbólico de subcategoría heredado.
func MigrateSubCategoryCode(old string) (string, bool) {
	code, ok := subCategoryCodeMigration[old]
	return code, ok
}

// CategoryCodeMigrations copia de la tabla de migración de categorías.
func CategoryCodeMigrations() map[string]string {
	return maps.Clone(categoryCodeMigration)
}

// SubCategoryCodeMigrations copia de la tabla de migración de subcategorías.
func SubCategoryCodeMigrations() map[string]string {
	return maps.Clone(subCategoryCodeMigration)
}
