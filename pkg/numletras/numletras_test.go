package numletras_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mandatos-api/pkg/numletras"
)

func TestCardinal_Valores(t *testing.T) {
	casos := map[int64]string{
		0:             "cero",
		1:             "uno",
		15:            "quince",
		16:            "dieciséis",
		21:            "veintiuno",
		22:            "veintidós",
		30:            "treinta",
		45:            "cuarenta y cinco",
		90:            "noventa",
		100:           "cien",
		101:           "ciento uno",
		180:           "ciento ochenta",
		500:           "quinientos",
		999:           "novecientos noventa y nueve",
		1000:          "mil",
		1001:          "mil uno",
		2500:          "dos mil quinientos",
		21000:         "veintiún mil",
		31000:         "treinta y un mil",
		90000:         "noventa mil",
		101000:        "ciento un mil",
		200000:        "doscientos mil",
		999999:        "novecientos noventa y nueve mil novecientos noventa y nueve",
		1_000_000:     "un millón",
		2_000_001:     "dos millones uno",
		21_000_000:    "veintiún millones",
		1_000_000_000: "mil millones",
	}
	for n, esperado := range casos {
		got, err := numletras.Cardinal(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, esperado, got, "n=%d", n)
	}
}

// Para todo n en [0, 999999] el resultado es no vacío, determinista y "cero" solo para 0.
func TestCardinal_RangoSeisDigitos(t *testing.T) {
	for n := int64(0); n <= 999_999; n++ {
		got, err := numletras.Cardinal(n)
		if err != nil {
			t.Fatalf("n=%d: error inesperado %v", n, err)
		}
		if got == "" {
			t.Fatalf("n=%d: resultado vacío", n)
		}
		if (got == "cero") != (n == 0) {
			t.Fatalf("n=%d: \"cero\" solo corresponde a 0, obtuvo %q", n, got)
		}
		if n%9973 == 0 {
			again, _ := numletras.Cardinal(n)
			assert.Equal(t, got, again)
		}
	}
}

func TestCardinal_FueraDeRango(t *testing.T) {
	_, err := numletras.Cardinal(-1)
	assert.ErrorIs(t, err, numletras.ErrNegative)

	_, err = numletras.Cardinal(numletras.Max + 1)
	assert.ErrorIs(t, err, numletras.ErrOutOfRange)

	got, err := numletras.Cardinal(numletras.Max)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestApocope(t *testing.T) {
	assert.Equal(t, "un", numletras.Apocope("uno"))
	assert.Equal(t, "veintiún", numletras.Apocope("veintiuno"))
	assert.Equal(t, "treinta y un", numletras.Apocope("treinta y uno"))
	assert.Equal(t, "tres", numletras.Apocope("tres"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Noventa (90) días", numletras.Capitalize("noventa (90) días"))
	assert.Equal(t, "Él", numletras.Capitalize("él"))
	assert.Equal(t, "", numletras.Capitalize(""))
}
