package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, quantity, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.Quantity, product.SellerID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, quantity, seller_id, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el producto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, quantity, seller_id, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (nombre, descripción, precio, stock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, quantity = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Quantity, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementStock resta qty al stock solo si alcanza (guard en el WHERE).
// Devuelve false si ninguna fila se actualizó.
func (r *ProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity - $2, updated_at = now()
		 WHERE id = $1 AND quantity >= $2`,
		id, qty,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista todos los productos del marketplace con el nombre del vendedor.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.quantity, p.seller_id, p.created_at, p.updated_at, u.username
		FROM products p
		JOIN profiles pr ON pr.id = p.seller_id
		JOIN users u ON u.id = pr.user_id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

// ListBySeller lista los productos de un farmer con paginación.
func (r *ProductRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.quantity, p.seller_id, p.created_at, p.updated_at, u.username
		FROM products p
		JOIN profiles pr ON pr.id = p.seller_id
		JOIN users u ON u.id = pr.user_id
		WHERE p.seller_id = $3
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset, sellerID)
}

func (r *ProductRepo) scanList(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.SellerID, &p.CreatedAt, &p.UpdatedAt, &p.SellerName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. El bloqueo por órdenes existentes lo
// decide el caso de uso antes de llamar aquí.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
