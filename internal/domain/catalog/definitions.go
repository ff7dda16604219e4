package catalog

// definitions tabla maestra de la taxonomía. No se modifica en tiempo de ejecución;
// el seed la copia a la base de datos.
//
// Los sufijos numéricos no son contiguos: T-006 y D-004 se retiraron y su SortOrder se reasignó.
var definitions = []Category{
	{
		Code: "C", Name: "Conveyor components", SortOrder: 1,
		SubCategories: []SubCategory{
			{Code: "C-001", Name: "Plastic chains", SortOrder: 1},
			{Code: "C-002", Name: "Steel chains", SortOrder: 2},
			{Code: "C-003", Name: "Modular belts", SortOrder: 3},
			{Code: "C-004", Name: "Chain guides", SortOrder: 4},
			{Code: "C-005", Name: "Wear strips", SortOrder: 5},
			{Code: "C-006", Name: "Sprockets", SortOrder: 6},
			{Code: "C-007", Name: "Idler wheels", SortOrder: 7},
			{Code: "C-008", Name: "Return rollers", SortOrder: 8},
			{Code: "C-009", Name: "Side guides", SortOrder: 9},
			{Code: "C-010", Name: "Side guide brackets", SortOrder: 10},
			{Code: "C-011", Name: "Side guide clamps", SortOrder: 11},
			{Code: "C-012", Name: "Transfer plates", SortOrder: 12},
			{Code: "C-013", Name: "Side guide accessories", SortOrder: 13},
			{Code: "C-014", Name: "Bend tracks", SortOrder: 14},
			{Code: "C-015", Name: "Magnetic bends", SortOrder: 15},
		},
	},
	{
		Code: "L", Name: "Levelling elements", SortOrder: 2,
		SubCategories: []SubCategory{
			{Code: "L-001", Name: "Fixed feet", SortOrder: 1},
			{Code: "L-002", Name: "Swivel feet", SortOrder: 2},
			{Code: "L-003", Name: "Anti-vibration feet", SortOrder: 3},
			{Code: "L-004", Name: "Floor fixing plates", SortOrder: 4},
			{Code: "L-005", Name: "Castors", SortOrder: 5},
			{Code: "L-006", Name: "Tube connectors", SortOrder: 6},
		},
	},
	{
		Code: "B", Name: "Bearings", SortOrder: 3,
		SubCategories: []SubCategory{
			{Code: "B-001", Name: "Ball bearings", SortOrder: 1},
			{Code: "B-002", Name: "Flange bearings", SortOrder: 2},
			{Code: "B-003", Name: "Pillow block bearings", SortOrder: 3},
			{Code: "B-004", Name: "Plastic bearings", SortOrder: 4},
			{Code: "B-005", Name: "Linear bearings", SortOrder: 5},
		},
	},
	{
		Code: "T", Name: "Transmission", SortOrder: 4,
		SubCategories: []SubCategory{
			{Code: "T-001", Name: "Roller chains", SortOrder: 1},
			{Code: "T-002", Name: "Chain sprockets", SortOrder: 2},
			{Code: "T-003", Name: "Timing belts", SortOrder: 3},
			{Code: "T-004", Name: "Timing pulleys", SortOrder: 4},
			{Code: "T-005", Name: "Couplings", SortOrder: 5},
			{Code: "T-007", Name: "Shafts", SortOrder: 6},
			{Code: "T-008", Name: "Shaft collars", SortOrder: 7},
		},
	},
	{
		Code: "M", Name: "Motors and drives", SortOrder: 5,
		SubCategories: []SubCategory{
			{Code: "M-001", Name: "Gear motors", SortOrder: 1},
			{Code: "M-002", Name: "Drum motors", SortOrder: 2},
			{Code: "M-003", Name: "Frequency inverters", SortOrder: 3},
			{Code: "M-004", Name: "Motor accessories", SortOrder: 4},
		},
	},
	{
		Code: "P", Name: "Profiles and structures", SortOrder: 6,
		SubCategories: []SubCategory{
			{Code: "P-001", Name: "Aluminium profiles", SortOrder: 1},
			{Code: "P-002", Name: "Profile connectors", SortOrder: 2},
			{Code: "P-003", Name: "End caps", SortOrder: 3},
			{Code: "P-004", Name: "T-slot nuts", SortOrder: 4},
			{Code: "P-005", Name: "Frame brackets", SortOrder: 5},
		},
	},
	{
		Code: "S", Name: "Sensors and controls", SortOrder: 7,
		SubCategories: []SubCategory{
			{Code: "S-001", Name: "Photoelectric sensors", SortOrder: 1},
			{Code: "S-002", Name: "Inductive sensors", SortOrder: 2},
			{Code: "S-003", Name: "Reflectors", SortOrder: 3},
			{Code: "S-004", Name: "Sensor brackets", SortOrder: 4},
			{Code: "S-005", Name: "Control panels", SortOrder: 5},
		},
	},
	{
		Code: "D", Name: "Drums and rollers", SortOrder: 8,
		SubCategories: []SubCategory{
			{Code: "D-001", Name: "Drive drums", SortOrder: 1},
			{Code: "D-002", Name: "Tail pulleys", SortOrder: 2},
			{Code: "D-003", Name: "Gravity rollers", SortOrder: 3},
			{Code: "D-005", Name: "Driven rollers", SortOrder: 4},
			{Code: "D-006", Name: "Roller brackets", SortOrder: 5},
		},
	},
	{
		Code: "W", Name: "Wear and sliding parts", SortOrder: 9,
		SubCategories: []SubCategory{
			{Code: "W-001", Name: "UHMW-PE profiles", SortOrder: 1},
			{Code: "W-002", Name: "Sliding pads", SortOrder: 2},
			{Code: "W-003", Name: "Wear plates", SortOrder: 3},
			{Code: "W-004", Name: "Scraper blades", SortOrder: 4},
		},
	},
	{
		Code: "V", Name: "Vacuum and pneumatics", SortOrder: 10,
		SubCategories: []SubCategory{
			{Code: "V-001", Name: "Vacuum cups", SortOrder: 1},
			{Code: "V-002", Name: "Pneumatic cylinders", SortOrder: 2},
			{Code: "V-003", Name: "Valves", SortOrder: 3},
			{Code: "V-004", Name: "Fittings", SortOrder: 4},
			{Code: "V-005", Name: "Hoses", SortOrder: 5},
		},
	},
	{
		Code: "G", Name: "General hardware", SortOrder: 11,
		SubCategories: []SubCategory{
			{Code: "G-001", Name: "Screws and bolts", SortOrder: 1},
			{Code: "G-002", Name: "Nuts", SortOrder: 2},
			{Code: "G-003", Name: "Washers", SortOrder: 3},
			{Code: "G-004", Name: "Knobs and handles", SortOrder: 4},
			{Code: "G-005", Name: "Hinges", SortOrder: 5},
			{Code: "G-006", Name: "Spare parts", SortOrder: 6},
		},
	},
}
