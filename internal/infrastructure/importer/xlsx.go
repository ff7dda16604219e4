package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

var _ appcatalog.RowReader = (*XLSXReader)(nil)

// XLSXReader lee productos desde una planilla Excel. La primera fila es el encabezado.
type XLSXReader struct {
	name  string
	r     io.Reader
	sheet string
}

// NewXLSXReader construye el lector. sheet vacío usa la primera hoja del libro.
func NewXLSXReader(name string, r io.Reader, sheet string) *XLSXReader {
	return &XLSXReader{name: name, r: r, sheet: sheet}
}

// Source nombre del archivo.
func (x *XLSXReader) Source() string { return x.name }

// ReadRows devuelve las filas de datos; Row es el número de fila en la hoja.
func (x *XLSXReader) ReadRows(ctx context.Context) ([]appcatalog.ImportRow, error) {
	f, err := excelize.OpenReader(x.r)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir xlsx: %w", domain.ErrInvalidInput, err)
	}
	defer func() { _ = f.Close() }()

	sheet := x.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: el libro no tiene hojas", domain.ErrInvalidInput)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %q: %w", domain.ErrInvalidInput, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: la hoja %q está vacía", domain.ErrInvalidInput, sheet)
	}
	idx, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]appcatalog.ImportRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(cells) {
			continue
		}
		out = append(out, buildRow(i+2, cells, idx))
	}
	return out, nil
}
