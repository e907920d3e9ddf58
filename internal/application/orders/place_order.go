package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/dto"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

// PlaceOrderUseCase crea órdenes de compra de forma transaccional: bloqueo de
// fila sobre el producto (SELECT FOR UPDATE), chequeo de stock, inserción de
// la orden y decremento de stock con Commit/Rollback. Dos compradores
// disputando la última unidad: exactamente uno gana el lock y el otro ve el
// stock ya decrementado.
type PlaceOrderUseCase struct {
	txRunner    TxRunner
	profileRepo repository.ProfileRepository
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(txRunner TxRunner, profileRepo repository.ProfileRepository) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{txRunner: txRunner, profileRepo: profileRepo}
}

// Place compra `quantity` unidades del producto a nombre del buyer.
//
// Retorna:
//   - domain.ErrInvalidInput        si quantity <= 0.
//   - domain.ErrNotFound            si el producto no existe.
//   - domain.ErrInsufficientStock   (envuelto con las unidades disponibles)
//     si quantity > stock; sin mutación alguna.
//
// TotalPrice = price * quantity con aritmética decimal exacta, snapshot al
// momento de la creación.
func (uc *PlaceOrderUseCase) Place(ctx context.Context, productID, buyerProfileID string, quantity int64) (*dto.OrderResponse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	buyer, err := uc.profileRepo.GetByID(buyerProfileID)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created *entity.Order

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar sobreventa concurrente
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if quantity > product.Quantity {
			return fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInsufficientStock, product.Quantity)
		}

		total := product.Price.Mul(decimal.NewFromInt(quantity))
		order := &entity.Order{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			BuyerID:    buyer.ID,
			Quantity:   quantity,
			TotalPrice: total,
			Status:     entity.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,

			ProductName: product.Name,
			UnitPrice:   product.Price,
			SellerID:    product.SellerID,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		ok, err := productRepo.DecrementStock(product.ID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			// No debería pasar bajo el lock; el guard del UPDATE es el cinturón
			return fmt.Errorf("%w: solo hay %d unidades disponibles", domain.ErrInsufficientStock, product.Quantity)
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}
