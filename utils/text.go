package utils

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

// NormalizeText quita acentos, pasa a minúsculas y recorta espacios
func NormalizeText(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

// UpperASCII es NormalizeText en mayúsculas, para comparar estados
func UpperASCII(input string) string {
	return strings.ToUpper(NormalizeText(input))
}
