package service

import (
	"context"

	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/internal/repository"
	"github.com/nandaputra/storefront-service/pkg/errs"
)

type fakeUserRepository struct {
	users  map[string]domain.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]domain.User{}, nextID: 1}
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, nil
}

func (f *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	data.ID = f.nextID
	f.nextID++
	f.users[data.Email] = data
	return data.ID, nil
}

type fakeProductRepository struct {
	products map[int64]domain.Product
	nextID   int64

	addCalls int
}

func newFakeProductRepository(products ...domain.Product) *fakeProductRepository {
	f := &fakeProductRepository{products: map[int64]domain.Product{}, nextID: 1}
	for _, product := range products {
		if product.ID >= f.nextID {
			f.nextID = product.ID + 1
		}
		f.products[product.ID] = product
	}
	return f
}

func (f *fakeProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

func (f *fakeProductRepository) GetProductsBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range f.products {
		if product.SellerID == sellerID {
			out = append(out, product)
		}
	}
	return out, nil
}

func (f *fakeProductRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func (f *fakeProductRepository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (int64, error) {
	f.addCalls++
	data.ID = f.nextID
	f.nextID++
	f.products[data.ID] = data
	return data.ID, nil
}

func (f *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	existing, ok := f.products[data.ID]
	if !ok {
		return errs.ErrProductNotFound
	}
	existing.Name = data.Name
	existing.Price = data.Price
	existing.Image = data.Image
	f.products[data.ID] = existing
	return nil
}

func (f *fakeProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return errs.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepository) UpsertProduct(ctx context.Context, data domain.Product) (int64, error) {
	return f.AddProduct(ctx, data)
}

// fakeOrderRepository stages writes inside HandleTrx and only commits them
// when the closure returns nil, mirroring the transactional contract.
type fakeOrderRepository struct {
	products map[int64]domain.Product

	nextOrderID  int64
	nextItemID   int64
	orders       []domain.Order
	items        []domain.OrderItem
	sellerOrders []domain.Order

	stagedOrders []domain.Order
	stagedItems  []domain.OrderItem

	failAddItems error
}

func newFakeOrderRepository(products map[int64]domain.Product) *fakeOrderRepository {
	return &fakeOrderRepository{products: products, nextOrderID: 1, nextItemID: 1}
}

func (f *fakeOrderRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.OrderRepository) error) error {
	f.stagedOrders = nil
	f.stagedItems = nil

	if err := fn(ctx, f); err != nil {
		f.stagedOrders = nil
		f.stagedItems = nil
		return err
	}

	f.orders = append(f.orders, f.stagedOrders...)
	f.items = append(f.items, f.stagedItems...)
	return nil
}

func (f *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (int64, error) {
	data.ID = f.nextOrderID
	f.nextOrderID++
	f.stagedOrders = append(f.stagedOrders, data)
	return data.ID, nil
}

func (f *fakeOrderRepository) AddOrderItems(ctx context.Context, data []domain.OrderItem) error {
	if f.failAddItems != nil {
		return f.failAddItems
	}
	for _, item := range data {
		item.ID = f.nextItemID
		f.nextItemID++
		f.stagedItems = append(f.stagedItems, item)
	}
	return nil
}

func (f *fakeOrderRepository) GetOrderWithItems(ctx context.Context, id int64) (domain.Order, error) {
	for _, order := range f.orders {
		if order.ID != id {
			continue
		}
		for _, item := range f.items {
			if item.OrderID == id {
				item.Product = f.products[item.ProductID]
				order.Items = append(order.Items, item)
			}
		}
		return order, nil
	}
	return domain.Order{}, errs.ErrInternalServer
}

func (f *fakeOrderRepository) GetOrdersBySeller(ctx context.Context, sellerID int64) ([]domain.Order, error) {
	return f.sellerOrders, nil
}
