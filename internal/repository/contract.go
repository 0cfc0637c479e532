package repository

import (
	"context"

	"github.com/nandaputra/storefront-service/internal/domain"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
}

type ProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductsBySeller(ctx context.Context, sellerID int64) (data []domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []int64) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
	UpsertProduct(ctx context.Context, data domain.Product) (id int64, err error)
}

type OrderRepository interface {
	// HandleTrx runs fn against a transaction-scoped copy of the repository.
	// The transaction commits only when fn returns nil; any error or panic
	// rolls the whole unit back.
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error

	AddOrder(ctx context.Context, data domain.Order) (id int64, err error)
	AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error)
	GetOrderWithItems(ctx context.Context, id int64) (data domain.Order, err error)
	GetOrdersBySeller(ctx context.Context, sellerID int64) (data []domain.Order, err error)
}
