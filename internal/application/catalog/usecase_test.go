package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/catalog"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/application/dto"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
)

const (
	farmerID      = "farmer-1"
	otherFarmerID = "farmer-2"
	productID     = "producto-1"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: solo lo que el catálogo necesita.
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (m *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return m.GetByID(id) }

func (m *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(id string) error {
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProductRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if p.SellerID == sellerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	p, ok := m.products[id]
	if !ok || p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	return true, nil
}

// memOrderRepo solo implementa CountByProduct de forma significativa.
type memOrderRepo struct {
	ordersByProduct map[string]int64
}

func (m *memOrderRepo) Create(*entity.Order) error                    { return nil }
func (m *memOrderRepo) GetByID(string) (*entity.Order, error)         { return nil, nil }
func (m *memOrderRepo) UpdateStatus(string, entity.OrderStatus) error { return nil }
func (m *memOrderRepo) ListBySeller(string) ([]*entity.Order, error)  { return nil, nil }
func (m *memOrderRepo) ListByBuyer(string) ([]*entity.Order, error)   { return nil, nil }
func (m *memOrderRepo) CountByProduct(productID string) (int64, error) {
	return m.ordersByProduct[productID], nil
}

func newCatalogFixture(t *testing.T) (*catalog.CatalogUseCase, *memProductRepo, *memOrderRepo) {
	t.Helper()
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		productID: {
			ID:       productID,
			Name:     "Papa criolla",
			Price:    decimal.RequireFromString("3.50"),
			Quantity: 100,
			SellerID: farmerID,
		},
	}}
	orderRepo := &memOrderRepo{ordersByProduct: map[string]int64{}}
	return catalog.NewCatalogUseCase(productRepo, orderRepo), productRepo, orderRepo
}

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Ok(t *testing.T) {
	uc, productRepo, _ := newCatalogFixture(t)

	out, err := uc.Create(farmerID, dto.CreateProductRequest{
		Name:     "Aguacate hass",
		Price:    decimal.RequireFromString("2.80"),
		Quantity: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, farmerID, out.SellerID)

	stored, _ := productRepo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.EqualValues(t, 40, stored.Quantity)
}

func TestCreate_PrecioNegativoRechazado(t *testing.T) {
	uc, _, _ := newCatalogFixture(t)

	_, err := uc.Create(farmerID, dto.CreateProductRequest{
		Name:  "Gratis no, regalado tampoco",
		Price: decimal.RequireFromString("-1.00"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_DuenoOk(t *testing.T) {
	uc, productRepo, _ := newCatalogFixture(t)

	out, err := uc.Update(productID, farmerID, dto.UpdateProductRequest{
		Name:     strPtr("Papa criolla lavada"),
		Price:    decPtr("4.00"),
		Quantity: intPtr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "Papa criolla lavada", out.Name)
	assert.Equal(t, "4.00", out.Price.StringFixed(2))

	stored, _ := productRepo.GetByID(productID)
	assert.EqualValues(t, 80, stored.Quantity)
}

func TestUpdate_FarmerAjenoRechazado(t *testing.T) {
	uc, productRepo, _ := newCatalogFixture(t)

	_, err := uc.Update(productID, otherFarmerID, dto.UpdateProductRequest{Name: strPtr("mío ahora")})
	require.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := productRepo.GetByID(productID)
	assert.Equal(t, "Papa criolla", stored.Name, "el rechazo no debe mutar el producto")
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc, _, _ := newCatalogFixture(t)

	_, err := uc.Update("no-existe", farmerID, dto.UpdateProductRequest{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_DuenoSinOrdenesOk(t *testing.T) {
	uc, productRepo, _ := newCatalogFixture(t)

	require.NoError(t, uc.Delete(productID, farmerID))

	stored, _ := productRepo.GetByID(productID)
	assert.Nil(t, stored)
}

func TestDelete_FarmerAjenoRechazado(t *testing.T) {
	uc, productRepo, _ := newCatalogFixture(t)

	err := uc.Delete(productID, otherFarmerID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := productRepo.GetByID(productID)
	assert.NotNil(t, stored)
}

// Borrar un producto con órdenes destruiría el historial de los buyers: se
// bloquea con ErrConflict.
func TestDelete_ConOrdenesBloqueado(t *testing.T) {
	uc, productRepo, orderRepo := newCatalogFixture(t)
	orderRepo.ordersByProduct[productID] = 3

	err := uc.Delete(productID, farmerID)
	require.ErrorIs(t, err, domain.ErrConflict)

	stored, _ := productRepo.GetByID(productID)
	assert.NotNil(t, stored, "el producto debe seguir existiendo")
}

func TestListBySeller_SoloPropios(t *testing.T) {
	uc, productRepo, _ := newCatalogFixture(t)
	require.NoError(t, productRepo.Create(&entity.Product{
		ID: "ajeno", Name: "Maíz", Price: decimal.New(1, 0), SellerID: otherFarmerID,
	}))

	out, err := uc.ListBySeller(farmerID, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, productID, out.Items[0].ID)
}
