// Package numletras convierte enteros no negativos a su forma cardinal en
// español (rioplatense), tal como se escriben en contratos y mandatos.
//
//	Cardinal(90)     → "noventa"
//	Cardinal(21000)  → "veintiún mil"
//	Cardinal(1e6)    → "un millón"
//
// El rango soportado es [0, Max]. Fuera de rango se devuelve error; nunca se
// trunca el número.
package numletras

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Max es el mayor valor convertible (novecientos noventa y nueve mil
// novecientos noventa y nueve millones...).
const Max int64 = 999_999_999_999

var (
	ErrNegative   = errors.New("numletras: número negativo")
	ErrOutOfRange = errors.New("numletras: número fuera de rango")
)

var unidades = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
	"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var decenas = [...]string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
}

var centenas = [...]string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos",
	"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos",
}

// Cardinal devuelve n en palabras, en minúsculas.
func Cardinal(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegative
	}
	if n > Max {
		return "", ErrOutOfRange
	}
	if n == 0 {
		return "cero", nil
	}
	return millones(n), nil
}

// Apocope aplica la apócope de "uno" delante de un sustantivo:
// "uno" → "un", "veintiuno" → "veintiún", "treinta y uno" → "treinta y un".
func Apocope(words string) string {
	switch {
	case strings.HasSuffix(words, "veintiuno"):
		return strings.TrimSuffix(words, "veintiuno") + "veintiún"
	case words == "uno" || strings.HasSuffix(words, " uno"):
		return strings.TrimSuffix(words, "uno") + "un"
	}
	return words
}

// Capitalize pone en mayúscula la primera letra (para frases al inicio de oración).
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func millones(n int64) string {
	m, resto := n/1_000_000, n%1_000_000
	if m == 0 {
		return miles(resto)
	}
	var b strings.Builder
	if m == 1 {
		b.WriteString("un millón")
	} else {
		b.WriteString(Apocope(miles(m)))
		b.WriteString(" millones")
	}
	if resto > 0 {
		b.WriteString(" ")
		b.WriteString(miles(resto))
	}
	return b.String()
}

func miles(n int64) string {
	k, resto := n/1000, n%1000
	if k == 0 {
		return hasta999(resto)
	}
	var b strings.Builder
	if k > 1 {
		b.WriteString(Apocope(hasta999(k)))
		b.WriteString(" ")
	}
	b.WriteString("mil")
	if resto > 0 {
		b.WriteString(" ")
		b.WriteString(hasta999(resto))
	}
	return b.String()
}

func hasta999(n int64) string {
	if n == 100 {
		return "cien"
	}
	c, resto := n/100, n%100
	switch {
	case c == 0:
		return hasta99(resto)
	case resto == 0:
		return centenas[c]
	default:
		return centenas[c] + " " + hasta99(resto)
	}
}

func hasta99(n int64) string {
	if n < int64(len(unidades)) {
		return unidades[n]
	}
	d, u := n/10, n%10
	if u == 0 {
		return decenas[d]
	}
	return decenas[d] + " y " + unidades[u]
}
