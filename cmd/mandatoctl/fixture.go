package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
)

// fixture es el JSON de entrada de "render": una propiedad con su mandato.
type fixture struct {
	Propiedad struct {
		ID                  string          `json:"id"`
		Titulo              string          `json:"titulo"`
		TipoPropiedad       string          `json:"tipoPropiedad"`
		Direccion           string          `json:"direccion"`
		PartidaInmobiliaria string          `json:"partidaInmobiliaria"`
		Localidad           string          `json:"localidad"`
		Descripcion         string          `json:"descripcion"`
		Estado              string          `json:"estado"`
		Propietarios        json.RawMessage `json:"propietarios"`
		Asesor              struct {
			Nombre string `json:"nombre"`
			Email  string `json:"email"`
		} `json:"asesor"`
	} `json:"propiedad"`
	Mandato struct {
		ID            string          `json:"id"`
		PlazoDias     int             `json:"plazoDias"`
		Monto         decimal.Decimal `json:"monto"`
		Moneda        string          `json:"moneda"`
		Observaciones string          `json:"observaciones"`
		Estado        string          `json:"estado"`
		FirmadoPor    string          `json:"firmadoPor"`
		FechaFirma    *time.Time      `json:"fechaFirma"`
	} `json:"mandato"`
}

func loadFixture(path string) (*entity.Property, *entity.Mandate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("leer fixture: %w", err)
	}
	return parseFixture(raw)
}

// parseFixture arma las entidades. Los propietarios quedan como JSON crudo,
// igual que en la base, para que pasen por la misma normalización.
func parseFixture(raw []byte) (*entity.Property, *entity.Mandate, error) {
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("fixture inválido: %w", err)
	}
	p := f.Propiedad
	property := &entity.Property{
		ID:           nonEmpty(p.ID, "fixture"),
		Title:        p.Titulo,
		PropertyType: p.TipoPropiedad,
		Address:      p.Direccion,
		CadastralRef: p.PartidaInmobiliaria,
		Locality:     p.Localidad,
		Description:  p.Descripcion,
		Status:       nonEmpty(p.Estado, entity.PropertyStatusApproved),
		Advisor:      &entity.Advisor{Name: p.Asesor.Nombre, Email: p.Asesor.Email},
	}
	if owners := strings.TrimSpace(string(p.Propietarios)); owners != "" && owners != "null" {
		property.OwnersJSON = &owners
	}

	m := f.Mandato
	mandate := &entity.Mandate{
		ID:         nonEmpty(m.ID, "fixture"),
		PropertyID: property.ID,
		TermDays:   m.PlazoDias,
		Amount:     m.Monto,
		Currency:   strings.ToUpper(nonEmpty(m.Moneda, entity.CurrencyARS)),
		Notes:      m.Observaciones,
		Status:     nonEmpty(m.Estado, entity.MandateStatusDraft),
		SignedBy:   m.FirmadoPor,
		SignedAt:   m.FechaFirma,
	}
	return property, mandate, nil
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
