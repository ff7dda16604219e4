// Package sku convierte códigos de proveedor al formato de SKU interno.
package sku

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/jhoicas/catalogo-industrial/internal/domain"
)

// SupplierTecom identificador del proveedor Tecom en los feeds de importación.
const SupplierTecom = "tecom"

// tecomMinLength prefijo (1) + número de parte (4) + al menos un carácter de código identificador.
const tecomMinLength = 6

// ConvertTecomSKU convierte un código de parte Tecom al SKU interno.
//
//	B...        → sin cambios
//	C/L + NNNN + resto → "1" + NNNN sin ceros a la izquierda + "-" + resto
//
// Ej.: C020080271 → 1200-80271, L008580271 → 185-80271.
// El número de parte debe ser de cuatro dígitos; cualquier otro contenido se rechaza
// con ErrInvalidInput en lugar de producir un SKU corrupto.
func ConvertTecomSKU(supplierSKU string) (string, error) {
	if utf8.RuneCountInString(supplierSKU) < tecomMinLength {
		return "", fmt.Errorf("%w: SKU Tecom %q demasiado corto", domain.ErrInvalidInput, supplierSKU)
	}

	switch supplierSKU[0] {
	case 'B', 'b':
		return supplierSKU, nil
	case 'C', 'c', 'L', 'l':
		partNumber := supplierSKU[1:5]
		identifyingCode := supplierSKU[5:]
		n, err := parsePartNumber(partNumber)
		if err != nil {
			return "", fmt.Errorf("%w: número de parte %q en SKU Tecom %q", domain.ErrInvalidInput, partNumber, supplierSKU)
		}
		return "1" + strconv.Itoa(n) + "-" + identifyingCode, nil
	default:
		r, _ := utf8.DecodeRuneInString(supplierSKU)
		return "", fmt.Errorf("%w: %q en SKU Tecom %q", domain.ErrUnsupportedPrefix, r, supplierSKU)
	}
}

// parsePartNumber solo acepta dígitos ASCII; strconv.Atoi aceptaría signos.
func parsePartNumber(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
