package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/dto"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD para productos del marketplace.
// La autorización por rol (solo farmers publican) la aplica la ruta con
// RequireRole; aquí solo se verifica propiedad sobre el producto.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, orderRepo: orderRepo}
}

// Create publica un nuevo producto a nombre del farmer.
func (uc *CatalogUseCase) Create(sellerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SellerID:    sellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID (vista de detalle).
func (uc *CatalogUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Falla con ErrForbidden si el farmer no es el dueño.
func (uc *CatalogUseCase) Update(id, sellerID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del dueño. Si existen órdenes que lo referencian
// se bloquea con ErrConflict: borrar en cascada destruiría el historial de
// compras de los buyers.
func (uc *CatalogUseCase) Delete(id, sellerID string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.SellerID != sellerID {
		return domain.ErrForbidden
	}
	count, err := uc.orderRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.productRepo.Delete(id)
}

// List lista todos los productos del marketplace (público, todos los vendedores).
func (uc *CatalogUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, limit, offset), nil
}

// ListBySeller lista los productos del farmer (dashboard).
func (uc *CatalogUseCase) ListBySeller(sellerID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListBySeller(sellerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list, limit, offset), nil
}

func toProductListResponse(list []*entity.Product, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		SellerID:    p.SellerID,
		SellerName:  p.SellerName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
