package repository

import "github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"

// ProductRepository puerto de persistencia para productos del marketplace.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
	ListBySeller(sellerID string, limit, offset int) ([]*entity.Product, error)
	// DecrementStock resta qty al stock del producto. Devuelve false si la
	// fila no se actualizó (stock insuficiente a nivel SQL).
	DecrementStock(id string, qty int64) (bool, error)
}
