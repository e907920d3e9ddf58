package orders

import (
	"context"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la creación de la orden y el
// decremento de stock se confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de una orden. Recibe la orden
// con los campos de join poblados (ProductName, UnitPrice, BuyerName, SellerName).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}
