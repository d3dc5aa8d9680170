package documents

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SanitizeFilename quita acentos y reemplaza todo lo que no sea alfanumérico por "_".
// Ej: "Casa en Funes (Ñandú)" → "Casa_en_Funes_Nandu"
func SanitizeFilename(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	return strings.Trim(nonAlnum.ReplaceAllString(plain, "_"), "_")
}

// MandateFilename arma el nombre del archivo descargable: mandato_{título}_{id}.{ext}
func MandateFilename(title, id, ext string) string {
	base := SanitizeFilename(title)
	if base == "" {
		return "mandato_" + id + "." + ext
	}
	return "mandato_" + base + "_" + id + "." + ext
}
