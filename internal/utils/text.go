package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey reduz um texto à forma usada na comparação de cabeçalhos de
// planilha: minúsculas, sem acentos e apenas [a-z0-9]. "Cliente/Órgão" e
// "CLIENTE_ORGAO" produzem ambos "clienteorgao".
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if stripped, _, err := transform.String(stripAccents, s); err == nil {
		s = stripped
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
