package orders

import (
	"context"
	"fmt"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una compra.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator}
}

// DownloadReceipt genera el PDF del comprobante de la orden.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe.
//   - domain.ErrForbidden        si la orden no pertenece al buyer del token.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, orderID, buyerProfileID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.BuyerID != buyerProfileID {
		return nil, "", domain.ErrForbidden
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("recibo-%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
