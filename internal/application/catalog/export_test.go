package catalog

// SetMigrationPageSize permite ejercitar la paginación con pocos productos.
func SetMigrationPageSize(uc *MigrationUseCase, n int) { uc.pageSize = n }
