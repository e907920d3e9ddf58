package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden. TotalPrice ya viene calculado (snapshot).
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, product_id, buyer_id, quantity, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ProductID, order.BuyerID, order.Quantity,
		order.TotalPrice, string(order.Status), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// selectOrder columnas base + joins de producto, comprador y vendedor.
const selectOrder = `
	SELECT o.id, o.product_id, o.buyer_id, o.quantity, o.total_price, o.status, o.created_at, o.updated_at,
	       p.name, p.price, p.seller_id, bu.username, su.username
	FROM orders o
	JOIN products p ON p.id = o.product_id
	JOIN profiles b ON b.id = o.buyer_id
	JOIN users bu ON bu.id = b.user_id
	JOIN profiles s ON s.id = p.seller_id
	JOIN users su ON su.id = s.user_id`

// GetByID obtiene una orden con producto, comprador y vendedor unidos.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := r.q.QueryRow(context.Background(), selectOrder+` WHERE o.id = $1`, id).Scan(
		&o.ID, &o.ProductID, &o.BuyerID, &o.Quantity, &o.TotalPrice, &status, &o.CreatedAt, &o.UpdatedAt,
		&o.ProductName, &o.UnitPrice, &o.SellerID, &o.BuyerName, &o.SellerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// UpdateStatus cambia el estado de cumplimiento de la orden.
func (r *OrderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// ListBySeller lista las órdenes sobre productos de un farmer.
func (r *OrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	return r.scanList(selectOrder+` WHERE p.seller_id = $1 ORDER BY o.created_at DESC`, sellerID)
}

// ListByBuyer lista las compras de un buyer.
func (r *OrderRepo) ListByBuyer(buyerID string) ([]*entity.Order, error) {
	return r.scanList(selectOrder+` WHERE o.buyer_id = $1 ORDER BY o.created_at DESC`, buyerID)
}

func (r *OrderRepo) scanList(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(
			&o.ID, &o.ProductID, &o.BuyerID, &o.Quantity, &o.TotalPrice, &status, &o.CreatedAt, &o.UpdatedAt,
			&o.ProductName, &o.UnitPrice, &o.SellerID, &o.BuyerName, &o.SellerName,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// CountByProduct cuenta las órdenes que referencian un producto.
func (r *OrderRepo) CountByProduct(productID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by product: %w", err)
	}
	return count, nil
}
