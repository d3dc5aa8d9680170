package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedLabel_HoraArgentina(t *testing.T) {
	generated := time.Date(2026, 10, 19, 2, 15, 0, 0, time.UTC)
	assert.Equal(t, "Documento generado el 18/10/2026 23:15", generatedLabel(generated))
}
