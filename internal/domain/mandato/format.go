// Package mandato arma los datos que alimentan el documento de mandato de
// venta: montos en letras, plazos, fechas y propietarios.
package mandato

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/pkg/numletras"
)

// Nombres legales de las monedas.
var currencyNames = map[string]string{
	entity.CurrencyARS: "PESOS ARGENTINOS",
	entity.CurrencyUSD: "DÓLARES ESTADOUNIDENSES",
}

// Amount es el monto del mandato en sus tres formas de presentación.
type Amount struct {
	Legal        string // PESOS ARGENTINOS NOVENTA MIL (ARS 90.000)
	Words        string // NOVENTA MIL
	CurrencyName string // PESOS ARGENTINOS
	Numeral      string // 90.000
}

// Term es el plazo del mandato expresado en días, meses y la forma preferida.
type Term struct {
	Days   string // noventa (90) días
	Months string // tres (3) meses; vacío si no es múltiplo de 30
	Smart  string // Months si existe, si no Days
}

// Words convierte n a letras. Si la conversión falla devuelve el número tal
// cual; un mandato nunca deja de generarse por un monto raro.
func Words(n int64) string {
	w, err := numletras.Cardinal(n)
	if err != nil {
		log.Warn().Err(err).Int64("numero", n).Msg("mandato: conversión a letras, se usa el numeral")
		return strconv.FormatInt(n, 10)
	}
	return w
}

// CurrencyName devuelve el nombre legal de la moneda (o el código si es desconocida).
func CurrencyName(currency string) string {
	if name, ok := currencyNames[strings.ToUpper(currency)]; ok {
		return name
	}
	return strings.ToUpper(currency)
}

// FormatAmount compone la frase legal del monto.
func FormatAmount(amount decimal.Decimal, currency string) Amount {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	cur := strings.ToUpper(currency)
	rounded := amount.Round(2)
	integer := rounded.Truncate(0)
	cents := rounded.Sub(integer).Mul(decimal.NewFromInt(100)).IntPart()

	words := Words(integer.IntPart())
	if cents > 0 {
		words += fmt.Sprintf(" con %02d/100", cents)
	}
	words = strings.ToUpper(words)

	numeral := FormatNumber(rounded)
	name := CurrencyName(cur)
	return Amount{
		Legal:        fmt.Sprintf("%s %s (%s %s)", name, words, cur, numeral),
		Words:        words,
		CurrencyName: name,
		Numeral:      numeral,
	}
}

// FormatNumber formatea según es-AR: punto de miles, coma decimal, sin
// decimales si el monto es entero y con dos si tiene centavos.
// Ej: 90000 → "90.000", 1234.5 → "1.234,50"
func FormatNumber(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	d = d.Abs()
	integer := d.Truncate(0)
	s := groupThousands(integer.String())
	if !d.Equal(integer) {
		cents := d.Sub(integer).Mul(decimal.NewFromInt(100)).IntPart()
		s += fmt.Sprintf(",%02d", cents)
	}
	if neg {
		s = "-" + s
	}
	return s
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// PhraseTerm expresa el plazo en días (y en meses cuando es múltiplo de 30).
// Un plazo de 0 días no genera texto.
func PhraseTerm(days int) Term {
	if days <= 0 {
		return Term{}
	}
	t := Term{Days: countPhrase(days, "día", "días")}
	if days%30 == 0 {
		t.Months = countPhrase(days/30, "mes", "meses")
	}
	t.Smart = t.Days
	if t.Months != "" {
		t.Smart = t.Months
	}
	return t
}

// countPhrase arma "{letras} ({n}) {sustantivo}" con apócope: "un (1) mes".
func countPhrase(n int, singular, plural string) string {
	noun := plural
	if n == 1 {
		noun = singular
	}
	return fmt.Sprintf("%s (%d) %s", numletras.Apocope(Words(int64(n))), n, noun)
}

// DateLayout es el formato corto es-AR (día/mes/año).
const DateLayout = "2/1/2006"

var argentina = loadArgentina()

func loadArgentina() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		return time.FixedZone("ART", -3*60*60)
	}
	return loc
}

// InArgentina expresa t en la hora de Buenos Aires, la de todos los documentos.
func InArgentina(t time.Time) time.Time { return t.In(argentina) }

// FormatDate devuelve la fecha en formato es-AR; nil o fecha cero → "".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return InArgentina(*t).Format(DateLayout)
}
