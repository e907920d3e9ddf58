package orders

import (
	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/dto"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

// FulfillmentUseCase transiciones de estado y listados de órdenes.
// Solo el farmer dueño del producto puede mover el estado; el lado corporate
// es de solo lectura.
type FulfillmentUseCase struct {
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
}

// NewFulfillmentUseCase construye el caso de uso.
func NewFulfillmentUseCase(orderRepo repository.OrderRepository, profileRepo repository.ProfileRepository) *FulfillmentUseCase {
	return &FulfillmentUseCase{orderRepo: orderRepo, profileRepo: profileRepo}
}

// UpdateStatus mueve el estado de la orden. No se impone orden entre estados
// (pending -> delivered directo es válido), pero el valor debe ser conocido:
// un estado inválido se rechaza con ErrInvalidInput en vez de ignorarse.
func (uc *FulfillmentUseCase) UpdateStatus(orderID, actingProfileID, newStatus string) (*dto.OrderResponse, error) {
	status, ok := entity.ParseOrderStatus(newStatus)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	acting, err := uc.profileRepo.GetByID(actingProfileID)
	if err != nil {
		return nil, err
	}
	if acting == nil || acting.Role != entity.RoleFarmer {
		return nil, domain.ErrForbidden
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.SellerID != acting.ID {
		return nil, domain.ErrForbidden
	}
	if err := uc.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return toOrderResponse(order), nil
}

// ListBySeller lista las órdenes sobre los productos del farmer.
func (uc *FulfillmentUseCase) ListBySeller(sellerProfileID string) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListBySeller(sellerProfileID)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list), nil
}

// ListByBuyer lista las compras del buyer (historial corporate, solo lectura).
func (uc *FulfillmentUseCase) ListByBuyer(buyerProfileID string) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByBuyer(buyerProfileID)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list), nil
}

func toOrderListResponse(list []*entity.Order) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		BuyerID:     o.BuyerID,
		BuyerName:   o.BuyerName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		TotalPrice:  o.TotalPrice,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}
