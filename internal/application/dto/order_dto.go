package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest entrada para comprar una cantidad de un producto.
// La cantidad es tipada: JSON no numérico se rechaza en el BodyParser.
type PlaceOrderRequest struct {
	Quantity int64 `json:"quantity" validate:"required,min=1"`
}

// UpdateOrderStatusRequest entrada del farmer para mover el estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipping delivered cancelled"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	BuyerID     string          `json:"buyer_id"`
	BuyerName   string          `json:"buyer_name,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderListResponse lista de órdenes (farmer o corporate).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
