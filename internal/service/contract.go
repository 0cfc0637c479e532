package service

import (
	"context"

	"github.com/nandaputra/storefront-service/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (res dto.UserResponse, err error)
	Login(ctx context.Context, payload dto.LoginRequest) (res dto.UserResponse, err error)
}

type ProductService interface {
	GetProducts(ctx context.Context) (res []dto.ProductResponse, err error)
	GetProductsBySeller(ctx context.Context, sellerID int64) (res []dto.ProductResponse, err error)
	AddProduct(ctx context.Context, payload dto.ProductRequest) (res dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id int64, payload dto.ProductRequest) (res dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, payload dto.OrderRequest) (res dto.OrderResponse, err error)
	GetSellerOrders(ctx context.Context, sellerID int64) (res []dto.OrderResponse, err error)
}
