package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
	"github.com/jhoicas/Mandatos-api/internal/application/dto"
	"github.com/jhoicas/Mandatos-api/internal/application/usecase"
	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/infrastructure/docx"
	apphttp "github.com/jhoicas/Mandatos-api/internal/interfaces/http"
	"github.com/jhoicas/Mandatos-api/internal/testutil/docmock"
	"github.com/jhoicas/Mandatos-api/internal/testutil/repomock"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

type apiFixture struct {
	property *entity.Property
	mandate  *entity.Mandate
	docx     documents.DocxRenderer
	pdf      *docmock.PDFGenerator
}

func newAPIFixture() *apiFixture {
	return &apiFixture{
		property: &entity.Property{
			ID:        "prop-1",
			Title:     "Casa en Funes",
			AdvisorID: testUserID,
			Status:    entity.PropertyStatusApproved,
		},
		mandate: &entity.Mandate{
			ID:       "mand-1",
			TermDays: 90,
			Amount:   decimal.NewFromInt(90000),
			Currency: entity.CurrencyARS,
			Status:   entity.MandateStatusDraft,
		},
		docx: &docmock.DocxRenderer{},
		pdf:  &docmock.PDFGenerator{},
	}
}

func (f *apiFixture) app() *fiber.App {
	props := &repomock.PropertyRepo{
		GetByIDFn: func(context.Context, string) (*entity.Property, error) { return f.property, nil },
	}
	mandates := &repomock.MandateRepo{
		GetByPropertyIDFn: func(context.Context, string) (*entity.Mandate, error) { return f.mandate, nil },
	}
	users := &repomock.UserRepo{
		GetByIDFn: func(_ context.Context, id string) (*entity.User, error) {
			if id != testUserID {
				return nil, nil
			}
			return &entity.User{ID: id, Name: testUserName, Role: entity.RoleAsesor, Status: entity.UserStatusActive}, nil
		},
	}
	log := logger.Nop()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PropertyUC: usecase.NewPropertyUseCase(props, users, log),
		MandateUC:  usecase.NewMandateUseCase(&repomock.TxRunner{Properties: props, Mandates: mandates}, props, mandates, log),
		DocumentUC: documents.NewMandateDocumentUseCase(props, mandates, f.docx, f.pdf, log),
		UserUC:     usecase.NewUserUseCase(users),
		Logger:     log,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func (f *apiFixture) get(t *testing.T, path, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", auth)
	resp, err := f.app().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeDocError(t *testing.T, resp *http.Response) dto.DocumentErrorResponse {
	t.Helper()
	var body dto.DocumentErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestMandateDOCX_Descarga(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/api/properties/prop-1/mandate/docx", tokenForRole(t, "asesor"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, documents.ContentTypeDOCX, resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="mandato_Casa_en_Funes_prop-1.docx"`, resp.Header.Get("Content-Disposition"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "PK-docx", string(body))
}

func TestMandatePDF_Descarga(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/api/properties/prop-1/mandate/pdf", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, documents.ContentTypePDF, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "mandato_Casa_en_Funes_prop-1.pdf")
}

func TestMandateDOCX_SinMandato_404(t *testing.T) {
	f := newAPIFixture()
	f.mandate = nil
	resp := f.get(t, "/api/properties/prop-1/mandate/docx", tokenForRole(t, "asesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Content-Disposition"), "no se envía ningún archivo")
	body := decodeDocError(t, resp)
	assert.Equal(t, "MANDATE_NOT_FOUND", body.Code)
	assert.NotEmpty(t, body.Error)
}

func TestMandateDOCX_PropiedadNoAprobada_409(t *testing.T) {
	f := newAPIFixture()
	f.property.Status = entity.PropertyStatusPending
	resp := f.get(t, "/api/properties/prop-1/mandate/docx", tokenForRole(t, "asesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, decodeDocError(t, resp).Detalles, "aprobada")
}

func TestMandateDOCX_OtroAsesor_403(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/api/properties/prop-1/mandate/docx", tokenFor(t, "otro-asesor", "asesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMandateDOCX_PlantillaFaltante_500(t *testing.T) {
	f := newAPIFixture()
	f.docx = docx.NewTemplateRenderer(filepath.Join(t.TempDir(), "mandato.docx"))
	resp := f.get(t, "/api/properties/prop-1/mandate/docx", tokenForRole(t, "asesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"))
	assert.Equal(t, "TEMPLATE_MISSING", decodeDocError(t, resp).Code)
}

func TestMandateDOCX_PlantillaConErrores_500(t *testing.T) {
	f := newAPIFixture()
	f.docx = &docmock.DocxRenderer{RenderFn: func(context.Context, map[string]string) ([]byte, error) {
		return nil, &domain.TemplateRenderError{Issues: []domain.TemplateIssue{
			{Part: "word/document.xml", Tag: "{{sinCerrar", Message: "tag sin cerrar"},
			{Part: "word/footer1.xml", Tag: "{{ }}", Message: "tag vacío"},
		}}
	}}
	resp := f.get(t, "/api/properties/prop-1/mandate/docx", tokenForRole(t, "asesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeDocError(t, resp)
	assert.Equal(t, "TEMPLATE_RENDER", body.Code)
	assert.NotEmpty(t, body.Detalles)
	require.Len(t, body.Errores, 2)
	assert.Equal(t, "word/footer1.xml", body.Errores[1].Parte)
}

func TestRouter_SinToken_401(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/api/properties/prop-1/mandate/pdf", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_AnularSoloAdmin(t *testing.T) {
	f := newAPIFixture()
	req := httptest.NewRequest(http.MethodPost, "/api/properties/prop-1/mandate/void", nil)
	req.Header.Set("Authorization", tokenForRole(t, "asesor"))
	resp, err := f.app().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_CrearMandato(t *testing.T) {
	f := newAPIFixture()
	f.mandate = nil
	req := httptest.NewRequest(http.MethodPost, "/api/properties/prop-1/mandate",
		strings.NewReader(`{"plazoDias":45,"monto":"150000.5","moneda":"ARS"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "asesor"))
	resp, err := f.app().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.MandateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "cuarenta y cinco (45) días", out.TermText)
	assert.Contains(t, out.AmountText, "(ARS 150.000,50)")
}

func TestRouter_Me(t *testing.T) {
	f := newAPIFixture()
	resp := f.get(t, "/api/me", tokenForRole(t, "asesor"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testUserName, out.Name)

	resp = f.get(t, "/api/me", tokenFor(t, "borrado", "asesor"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
