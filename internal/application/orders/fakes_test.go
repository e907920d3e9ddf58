package orders_test

import (
	"context"

	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/entity"
	"github.com/Manas-Mehakare/FarmingPlatform/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de órdenes. El fakeTxRunner ejecuta
// el callback de forma secuencial, que es exactamente lo que el lock de fila
// garantiza en producción: las transacciones sobre el mismo producto se
// serializan.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.GetByID(id)
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.SellerID == sellerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	p, ok := f.products[id]
	if !ok || p.Quantity < qty {
		return false, nil
	}
	p.Quantity -= qty
	return true, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	m := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		cp := *o
		m[o.ID] = &cp
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.SellerID == sellerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByBuyer(buyerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CountByProduct(productID string) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	m := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) Create(p *entity.Profile) error {
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.orderRepo, f.productRepo)
}
