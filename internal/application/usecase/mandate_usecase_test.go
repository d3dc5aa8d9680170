package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mandatos-api/internal/application/dto"
	"github.com/jhoicas/Mandatos-api/internal/application/usecase"
	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/entity"
	"github.com/jhoicas/Mandatos-api/internal/testutil/repomock"
	"github.com/jhoicas/Mandatos-api/pkg/logger"
)

type mandateFixture struct {
	property *entity.Property
	mandate  *entity.Mandate
	created  *entity.Mandate
	updated  *entity.Mandate
	tx       *repomock.TxRunner
	uc       *usecase.MandateUseCase
}

func newMandateFixture(propertyStatus string, mandate *entity.Mandate) *mandateFixture {
	f := &mandateFixture{property: propertyWithStatus(propertyStatus), mandate: mandate}
	props := &repomock.PropertyRepo{
		GetByIDFn: func(context.Context, string) (*entity.Property, error) { return f.property, nil },
	}
	mandates := &repomock.MandateRepo{
		GetByPropertyIDFn: func(context.Context, string) (*entity.Mandate, error) { return f.mandate, nil },
		CreateFn: func(_ context.Context, m *entity.Mandate) error {
			f.created = m
			return nil
		},
		UpdateFn: func(_ context.Context, m *entity.Mandate) error {
			f.updated = m
			return nil
		},
	}
	f.tx = &repomock.TxRunner{Properties: props, Mandates: mandates}
	f.uc = usecase.NewMandateUseCase(f.tx, props, mandates, logger.Nop())
	return f
}

func mandateWithStatus(status string) *entity.Mandate {
	return &entity.Mandate{
		ID:         "mand-1",
		PropertyID: "prop-1",
		TermDays:   90,
		Amount:     decimal.NewFromInt(90000),
		Currency:   entity.CurrencyARS,
		Status:     status,
	}
}

func validMandateRequest() dto.CreateMandateRequest {
	return dto.CreateMandateRequest{TermDays: 90, Amount: decimal.NewFromInt(200000), Currency: "usd"}
}

func TestMandateUseCase_Create(t *testing.T) {
	f := newMandateFixture(entity.PropertyStatusApproved, nil)

	out, err := f.uc.Create(context.Background(), asesor, "prop-1", validMandateRequest())
	require.NoError(t, err)
	require.NotNil(t, f.created)

	assert.Equal(t, 1, f.tx.Calls, "la creación corre dentro de la transacción")
	assert.Equal(t, entity.MandateStatusDraft, out.Status)
	assert.Equal(t, entity.CurrencyUSD, out.Currency)
	assert.Equal(t, "tres (3) meses", out.TermText)
	assert.Contains(t, out.AmountText, "DÓLARES ESTADOUNIDENSES")
	assert.Contains(t, out.AmountText, "(USD 200.000)")
}

func TestMandateUseCase_Create_Precondiciones(t *testing.T) {
	ctx := context.Background()

	f := newMandateFixture(entity.PropertyStatusPending, nil)
	_, err := f.uc.Create(ctx, asesor, "prop-1", validMandateRequest())
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	f = newMandateFixture(entity.PropertyStatusApproved, mandateWithStatus(entity.MandateStatusDraft))
	_, err = f.uc.Create(ctx, asesor, "prop-1", validMandateRequest())
	assert.ErrorIs(t, err, domain.ErrConflict)

	f = newMandateFixture(entity.PropertyStatusApproved, nil)
	_, err = f.uc.Create(ctx, otro, "prop-1", validMandateRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f = newMandateFixture(entity.PropertyStatusApproved, nil)
	f.property = nil
	_, err = f.uc.Create(ctx, admin, "prop-1", validMandateRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, f.created)
}

func TestMandateUseCase_Create_Validaciones(t *testing.T) {
	cases := map[string]dto.CreateMandateRequest{
		"plazo cero":     {TermDays: 0, Amount: decimal.NewFromInt(1), Currency: "ARS"},
		"monto negativo": {TermDays: 30, Amount: decimal.NewFromInt(-1), Currency: "ARS"},
		"moneda":         {TermDays: 30, Amount: decimal.NewFromInt(1), Currency: "EUR"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			f := newMandateFixture(entity.PropertyStatusApproved, nil)
			_, err := f.uc.Create(context.Background(), asesor, "prop-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, f.tx.Calls, "no se abre transacción con datos inválidos")
		})
	}
}

func TestMandateUseCase_GetByProperty_SinMandato(t *testing.T) {
	f := newMandateFixture(entity.PropertyStatusApproved, nil)
	_, err := f.uc.GetByProperty(context.Background(), asesor, "prop-1")
	assert.ErrorIs(t, err, domain.ErrMandateNotFound)
}

func TestMandateUseCase_Transiciones(t *testing.T) {
	ctx := context.Background()
	f := newMandateFixture(entity.PropertyStatusApproved, mandateWithStatus(entity.MandateStatusDraft))

	_, err := f.uc.Sign(ctx, asesor, "prop-1", dto.SignMandateRequest{SignedBy: "Ana Gómez"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "no se firma un borrador")

	out, err := f.uc.Send(ctx, asesor, "prop-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MandateStatusSent, out.Status)

	_, err = f.uc.Sign(ctx, asesor, "prop-1", dto.SignMandateRequest{SignedBy: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	signedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	out, err = f.uc.Sign(ctx, asesor, "prop-1", dto.SignMandateRequest{SignedBy: "Ana Gómez", SignedAt: &signedAt})
	require.NoError(t, err)
	assert.Equal(t, entity.MandateStatusSigned, out.Status)
	assert.Equal(t, "Ana Gómez", out.SignedBy)
	require.NotNil(t, f.updated.SignedAt)
	assert.True(t, signedAt.Equal(*f.updated.SignedAt))
}

func TestMandateUseCase_Sign_FechaPorDefecto(t *testing.T) {
	f := newMandateFixture(entity.PropertyStatusApproved, mandateWithStatus(entity.MandateStatusSent))
	_, err := f.uc.Sign(context.Background(), asesor, "prop-1", dto.SignMandateRequest{SignedBy: "Ana"})
	require.NoError(t, err)
	require.NotNil(t, f.updated.SignedAt)
	assert.False(t, f.updated.SignedAt.IsZero())
}

func TestMandateUseCase_Void(t *testing.T) {
	ctx := context.Background()
	f := newMandateFixture(entity.PropertyStatusApproved, mandateWithStatus(entity.MandateStatusSigned))

	_, err := f.uc.Void(ctx, asesor, "prop-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.uc.Void(ctx, admin, "prop-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MandateStatusVoid, out.Status)

	_, err = f.uc.Void(ctx, admin, "prop-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "el mandato ya quedó anulado")
}
