package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

var _ appcatalog.RowReader = (*CSVReader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReader lee productos desde CSV. Detecta ";" o "," como separador a partir del encabezado
// y decodifica exportaciones ISO-8859-1 / Windows-1252 de sistemas heredados.
type CSVReader struct {
	name     string
	r        io.Reader
	encoding string
}

// NewCSVReader construye el lector. encoding: utf-8 (defecto), iso-8859-1, windows-1252.
func NewCSVReader(name string, r io.Reader, encoding string) *CSVReader {
	return &CSVReader{name: name, r: r, encoding: strings.ToLower(encoding)}
}

// Source nombre del archivo.
func (c *CSVReader) Source() string { return c.name }

// ReadRows devuelve las filas de datos; Row es el número de línea del registro.
func (c *CSVReader) ReadRows(ctx context.Context) ([]appcatalog.ImportRow, error) {
	dec, err := decoderFor(c.encoding)
	if err != nil {
		return nil, err
	}
	var src io.Reader = c.r
	if dec != nil {
		src = transform.NewReader(c.r, dec.NewDecoder())
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: leer csv: %w", domain.ErrInvalidInput, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: el archivo csv está vacío", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer encabezado csv: %w", domain.ErrInvalidInput, err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []appcatalog.ImportRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: leer csv: %w", domain.ErrInvalidInput, err)
		}
		if isBlank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		out = append(out, buildRow(line, record, idx))
	}
	return out, nil
}

func decoderFor(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return nil, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: codificación csv no soportada: %s", domain.ErrInvalidInput, name)
	}
}

// detectDelimiter elige ";" si aparece más que "," en la primera línea (Excel en locale es-CO).
func detectDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}
