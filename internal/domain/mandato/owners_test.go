package mandato_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
)

func strPtr(s string) *string { return &s }

func TestParseOwners_Nulo(t *testing.T) {
	assert.Empty(t, mandato.ParseOwners(nil))
	assert.Empty(t, mandato.ParseOwners(strPtr("")))
	assert.Empty(t, mandato.ParseOwners(strPtr("null")))
}

func TestParseOwners_JSONInvalido(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, mandato.ParseOwners(strPtr(`[{"nombreCompleto": "Ana"`)))
		assert.Empty(t, mandato.ParseOwners(strPtr(`{"nombre":"no es una lista"}`)))
	})
}

func TestParseOwners_Alias(t *testing.T) {
	raw := `[
		{"nombreCompleto":"Ana Gómez","dni":"12345678","cuil":"27-12345678-3"},
		{"nombre":"Juan Pérez","cuitCuil":"20-87654321-9","dni":30111222}
	]`
	owners := mandato.ParseOwners(&raw)
	require.Len(t, owners, 2)

	assert.Equal(t, "Ana Gómez", owners[0].FullName)
	assert.Equal(t, "27-12345678-3", owners[0].TaxID)

	assert.Equal(t, "Juan Pérez", owners[1].FullName, "nombre es alias de nombreCompleto")
	assert.Equal(t, "20-87654321-9", owners[1].TaxID, "cuitCuil es alias de cuil")
	assert.Equal(t, "30111222", owners[1].DNI, "DNI numérico se acepta como texto")
}

func TestParseOwners_NombreCompletoTienePrioridad(t *testing.T) {
	raw := `[{"nombreCompleto":"Ana María Gómez","nombre":"Ana","cuil":"1","cuitCuil":"2"}]`
	owners := mandato.ParseOwners(&raw)
	require.Len(t, owners, 1)
	assert.Equal(t, "Ana María Gómez", owners[0].FullName)
	assert.Equal(t, "1", owners[0].TaxID)
}

func TestOwnerSlots_SiempreTres(t *testing.T) {
	slots := mandato.OwnerSlots(nil)
	assert.Len(t, slots, entity.MaxOwners)
	for _, s := range slots {
		assert.Equal(t, entity.Owner{}, s)
	}

	four := make([]entity.Owner, 4)
	four[3].FullName = "sobrante"
	slots = mandato.OwnerSlots(four)
	for _, s := range slots {
		assert.NotEqual(t, "sobrante", s.FullName)
	}
}

func TestEncodeOwners_IdaYVuelta(t *testing.T) {
	in := []entity.Owner{{FullName: "Ana Gómez", DNI: "12345678", TaxID: "27-12345678-3", Email: "ana@example.com"}}
	raw, err := mandato.EncodeOwners(in)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, in, mandato.ParseOwners(raw))

	raw, err = mandato.EncodeOwners(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
