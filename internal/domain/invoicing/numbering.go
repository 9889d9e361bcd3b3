// Package invoicing: numeración consecutiva de facturas con formato PREFIJO-AÑO-SECUENCIA.
package invoicing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
)

// DefaultPrefix prefijo usado cuando la entidad emisora no define uno.
const DefaultPrefix = "INV"

const minSeqDigits = 4

// FormatNumber ej. FormatNumber("INV", 2025, 7) = "INV-2025-0007". Secuencias mayores a
// 9999 crecen en dígitos sin truncar.
func FormatNumber(prefix string, year, seq int) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, minSeqDigits, seq)
}

// ParseNumber separa un número de factura en prefijo, año y secuencia.
func ParseNumber(number string) (prefix string, year, seq int, err error) {
	i := strings.LastIndex(number, "-")
	if i <= 0 {
		return "", 0, 0, fmt.Errorf("%w: número de factura %q", domain.ErrInvalidInput, number)
	}
	j := strings.LastIndex(number[:i], "-")
	if j <= 0 {
		return "", 0, 0, fmt.Errorf("%w: número de factura %q", domain.ErrInvalidInput, number)
	}
	year, err = strconv.Atoi(number[j+1 : i])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: año en %q", domain.ErrInvalidInput, number)
	}
	seq, err = strconv.Atoi(number[i+1:])
	if err != nil || seq < 1 {
		return "", 0, 0, fmt.Errorf("%w: secuencia en %q", domain.ErrInvalidInput, number)
	}
	return number[:j], year, seq, nil
}

// NextNumber calcula el siguiente número a partir del último emitido para el prefijo.
// Sin último número, o si el último es de otro año, la secuencia reinicia en 1.
func NextNumber(prefix string, year int, last string) (string, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if last == "" {
		return FormatNumber(prefix, year, 1), nil
	}
	lastPrefix, lastYear, seq, err := ParseNumber(last)
	if err != nil {
		return "", err
	}
	if lastPrefix != prefix {
		return "", fmt.Errorf("%w: prefijo %q no coincide con %q", domain.ErrInvalidInput, lastPrefix, prefix)
	}
	if lastYear != year {
		return FormatNumber(prefix, year, 1), nil
	}
	return FormatNumber(prefix, year, seq+1), nil
}
