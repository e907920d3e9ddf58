package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado en el marketplace por un farmer.
// Quantity es el stock disponible; se decrementa al crear órdenes.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario, 2 decimales
	Quantity    int64           // stock disponible, nunca negativo en reposo
	SellerID    string          // Profile del farmer dueño
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// SellerName es solo lectura, poblado con join en listados.
	SellerName string
}
