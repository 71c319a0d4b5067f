// Package textutil utilidades de normalización de texto para búsquedas.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // quita marcas diacríticas (tildes)
	norm.NFC,
)

// Fold normaliza para comparación: minúsculas y sin tildes, de modo que
// "Açúcar" y "acucar" coincidan en la búsqueda de productos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si s contiene substr, sin distinguir mayúsculas ni tildes.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
