package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/orders"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
)

type fakeReceiptGenerator struct {
	lastOrder *entity.Order
}

func (f *fakeReceiptGenerator) GenerateReceiptPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	f.lastOrder = order
	return []byte("%PDF-fake"), nil
}

func newReceiptFixture(t *testing.T) (*orders.ReceiptUseCase, *fakeReceiptGenerator) {
	t.Helper()
	orderRepo := newFakeOrderRepo(&entity.Order{
		ID:          testOrderID,
		ProductID:   testProductID,
		BuyerID:     testBuyerID,
		Quantity:    2,
		TotalPrice:  decimal.RequireFromString("39.98"),
		Status:      entity.StatusDelivered,
		SellerID:    testFarmerID,
		ProductName: "Café orgánico",
		BuyerName:   "acme-corp",
		SellerName:  "finca-el-roble",
	})
	gen := &fakeReceiptGenerator{}
	return orders.NewReceiptUseCase(orderRepo, gen), gen
}

func TestDownloadReceipt_BuyerDueno(t *testing.T) {
	uc, gen := newReceiptFixture(t)

	pdfBytes, filename, err := uc.DownloadReceipt(context.Background(), testOrderID, testBuyerID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "recibo-"+testOrderID+".pdf", filename)
	require.NotNil(t, gen.lastOrder)
	assert.Equal(t, "Café orgánico", gen.lastOrder.ProductName, "el generador recibe la orden con joins poblados")
}

func TestDownloadReceipt_OtroBuyerRechazado(t *testing.T) {
	uc, gen := newReceiptFixture(t)

	_, _, err := uc.DownloadReceipt(context.Background(), testOrderID, "otro-buyer")
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, gen.lastOrder, "no debe generarse PDF para un ajeno")
}

func TestDownloadReceipt_OrdenInexistente(t *testing.T) {
	uc, _ := newReceiptFixture(t)

	_, _, err := uc.DownloadReceipt(context.Background(), "no-existe", testBuyerID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
