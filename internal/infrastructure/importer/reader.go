package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

// Options parámetros de lectura compartidos por los formatos.
type Options struct {
	CSVEncoding string
	Sheet       string
}

// ForFile elige el lector según la extensión del archivo subido (.xlsx, .csv, .xml).
func ForFile(filename string, r io.Reader, opts Options) (appcatalog.RowReader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return NewXLSXReader(filename, r, opts.Sheet), nil
	case ".csv":
		return NewCSVReader(filename, r, opts.CSVEncoding), nil
	case ".xml":
		return NewTecomFeedReader(filename, r), nil
	default:
		return nil, fmt.Errorf("%w: formato de archivo no soportado %q", domain.ErrInvalidInput, filepath.Ext(filename))
	}
}
