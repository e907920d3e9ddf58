package repository

import "github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes.
type OrderRepository interface {
	Create(order *entity.Order) error
	// GetByID devuelve la orden con producto, comprador y vendedor ya unidos
	// (ProductName, UnitPrice, BuyerName, SellerID poblados).
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(id string, status entity.OrderStatus) error
	ListBySeller(sellerID string) ([]*entity.Order, error)
	ListByBuyer(buyerID string) ([]*entity.Order, error)
	// CountByProduct cuenta órdenes que referencian un producto (bloqueo de borrado).
	CountByProduct(productID string) (int64, error)
}
