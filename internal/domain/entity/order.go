package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus es el estado de cumplimiento de una orden. Tipo cerrado.
// La tabla de transiciones es plana: el farmer puede pasar de cualquier
// estado a cualquier otro (pending -> delivered directo es válido).
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipping  OrderStatus = "shipping"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus convierte un string a OrderStatus. Devuelve false si el
// valor no es uno de los cuatro conocidos.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusShipping, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Order representa la compra de una cantidad de un producto por un buyer.
// TotalPrice es un snapshot al momento de la creación: no cambia aunque el
// precio del producto cambie después.
type Order struct {
	ID         string
	ProductID  string
	BuyerID    string // Profile del comprador
	Quantity   int64  // siempre positivo
	TotalPrice decimal.Decimal
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Campos solo lectura, poblados con join en listados y recibos.
	ProductName string
	UnitPrice   decimal.Decimal
	BuyerName   string
	SellerID    string // dueño del producto, para chequeos de autorización
	SellerName  string
}
