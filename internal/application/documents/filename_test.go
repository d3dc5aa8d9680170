package documents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Casa en Funes (Ñandú)":       "Casa_en_Funes_Nandu",
		"Depto. 3°B - Av. Pellegrini": "Depto_3_B_Av_Pellegrini",
		"  ¿Qué?  ":                   "Que",
		"%%%":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, documents.SanitizeFilename(in), in)
	}
}

func TestMandateFilename(t *testing.T) {
	assert.Equal(t, "mandato_Casa_en_Funes_prop-1.docx", documents.MandateFilename("Casa en Funes", "prop-1", "docx"))
	assert.Equal(t, "mandato_prop-1.pdf", documents.MandateFilename("***", "prop-1", "pdf"))
}
