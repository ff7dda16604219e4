package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/application/dto"
	"github.com/jhoicas/catalogo-industrial/internal/infrastructure/importer"
)

// ImportConfig parámetros del endpoint de importación.
type ImportConfig struct {
	MaxUploadBytes  int
	CSVEncoding     string
	DefaultSupplier string
	Sheet           string
}

// ImportHandler recibe archivos de productos (multipart) y los pasa al pipeline de importación.
type ImportHandler struct {
	uc  *appcatalog.ImportUseCase
	cfg ImportConfig
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *appcatalog.ImportUseCase, cfg ImportConfig) *ImportHandler {
	return &ImportHandler{uc: uc, cfg: cfg}
}

// Import godoc
// @Summary      Importar productos
// @Description  Acepta .xlsx, .csv o el feed .xml de Tecom. Las filas inválidas se reportan y el lote continúa.
// @Tags         catalog
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "Archivo de productos"
// @Param        supplier  formData  string  false  "Proveedor por defecto para filas sin proveedor"
// @Param        dry_run   formData  bool    false  "Validar sin escribir"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/catalog/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo file es requerido"})
	}
	if h.cfg.MaxUploadBytes > 0 && fh.Size > int64(h.cfg.MaxUploadBytes) {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code:    "FILE_TOO_LARGE",
			Message: "el archivo supera " + strconv.Itoa(h.cfg.MaxUploadBytes) + " bytes",
		})
	}
	dryRun, err := parseBoolField(c.FormValue("dry_run"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dry_run debe ser true o false"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	reader, err := importer.ForFile(fh.Filename, f, importer.Options{CSVEncoding: h.cfg.CSVEncoding, Sheet: h.cfg.Sheet})
	if err != nil {
		return respondError(c, err)
	}
	supplier := c.FormValue("supplier")
	if supplier == "" {
		supplier = h.cfg.DefaultSupplier
	}
	out, err := h.uc.Import(c.UserContext(), companyID, appcatalog.ImportRequest{
		Reader:          reader,
		DefaultSupplier: supplier,
		DryRun:          dryRun,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseBoolField(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
