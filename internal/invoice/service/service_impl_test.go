package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/smallbiznis/quickinvoice/internal/history"
	"github.com/smallbiznis/quickinvoice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock objects
type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(inv domain.Invoice, totals domain.Totals) ([]byte, error) {
	args := m.Called(inv, totals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestService(t *testing.T, renderer Renderer) (*Service, *history.Store) {
	t.Helper()
	store := history.NewStore(filepath.Join(t.TempDir(), "invoices.csv"), zap.NewNop())
	svc := New(Params{
		Log:      zap.NewNop(),
		Renderer: renderer,
		History:  store,
	}).(*Service)
	return svc, store
}

func validRequest() domain.InvoiceRequest {
	return domain.InvoiceRequest{
		ClientName:  "Acme",
		ClientEmail: "acme@example.com",
		Currency:    "USD ($)",
		Items: []domain.LineItemInput{
			{Description: "Widget", Quantity: 2, UnitPrice: 10},
		},
	}
}

func TestPreview(t *testing.T) {
	svc, _ := newTestService(t, nil)

	totals, err := svc.Preview(context.Background(), validRequest())
	require.NoError(t, err)
	assert.InDelta(t, 20.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 3.60, totals.Tax, 1e-9)
	assert.InDelta(t, 23.60, totals.GrandTotal, 1e-9)
}

func TestPreview_Validation(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	req := validRequest()
	req.Items = nil
	_, err := svc.Preview(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)

	req = validRequest()
	req.Currency = "EUR"
	_, err = svc.Preview(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	req = validRequest()
	req.Items = make([]domain.LineItemInput, domain.MaxLineItems+1)
	_, err = svc.Preview(ctx, req)
	assert.ErrorIs(t, err, domain.ErrTooManyItems)

	req = validRequest()
	req.Items[0].Quantity = -1
	_, err = svc.Preview(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	req = validRequest()
	req.Items[0].UnitPrice = -0.01
	_, err = svc.Preview(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPrice)
}

func TestGenerate_AppendsHistory(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("%PDF-fake"), nil)

	svc, store := newTestService(t, renderer)

	resp, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), resp.PDF)
	assert.Equal(t, "invoice-acme.pdf", resp.Filename)
	assert.InDelta(t, 23.60, resp.Totals.GrandTotal, 1e-9)

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].ClientName)
	assert.InDelta(t, 3.60, records[0].Tax, 1e-9)

	renderer.AssertExpectations(t)
}

func TestGenerate_RenderFailureSkipsHistory(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything, mock.Anything).Return(nil, domain.ErrGlyphUnsupported)

	svc, store := newTestService(t, renderer)

	_, err := svc.Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrGlyphUnsupported)

	records, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGenerate_EmptyInvoiceBlocked(t *testing.T) {
	renderer := &mockRenderer{}
	svc, _ := newTestService(t, renderer)

	req := validRequest()
	req.Items = nil
	_, err := svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)

	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestGenerate_INRScenario(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Currency == domain.CurrencyINR
	}), mock.Anything).Return([]byte("%PDF-fake"), nil)

	svc, _ := newTestService(t, renderer)

	resp, err := svc.Generate(context.Background(), domain.InvoiceRequest{
		ClientName: "Acme",
		Currency:   "INR (₹)",
		Items: []domain.LineItemInput{
			{Description: "A", Quantity: 1, UnitPrice: 5},
			{Description: "B", Quantity: 3, UnitPrice: 2.5},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.50, resp.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 2.25, resp.Totals.Tax, 1e-9)
	assert.InDelta(t, 14.75, resp.Totals.GrandTotal, 1e-9)
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "invoice-acme.pdf", pdfFilename("Acme"))
	assert.Equal(t, "invoice-acme-corp.pdf", pdfFilename("Acme Corp"))
	assert.Equal(t, "invoice.pdf", pdfFilename(""))
	assert.Equal(t, "invoice.pdf", pdfFilename("   "))
}
