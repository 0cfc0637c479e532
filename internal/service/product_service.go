package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/internal/dto"
	"github.com/nandaputra/storefront-service/internal/repository"
	"github.com/nandaputra/storefront-service/pkg/errs"
)

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

func CreateProductService(repo repository.ProductRepository) ProductService {
	return &ProductServiceImpl{repo: repo}
}

// parsePrice accepts the price as a JSON number or a numeric string and
// rejects everything else before it reaches the store.
func parsePrice(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, errs.ErrMissingFields
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errs.ErrInvalidPrice
	}

	var price float64
	switch val := v.(type) {
	case float64:
		price = val
	case string:
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, errs.ErrInvalidPrice
		}
		price = parsed
	default:
		return 0, errs.ErrInvalidPrice
	}

	if price < 0 {
		return 0, errs.ErrInvalidPrice
	}

	return price, nil
}

func toProductResponse(data domain.Product) dto.ProductResponse {
	res := dto.ProductResponse{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		SellerID:  data.SellerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.SellerName != "" {
		res.Seller = &dto.SellerResponse{
			ID:   data.SellerID,
			Name: data.SellerName,
		}
	}

	return res
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (res []dto.ProductResponse, err error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		res = append(res, toProductResponse(product))
	}

	return res, nil
}

func (s *ProductServiceImpl) GetProductsBySeller(ctx context.Context, sellerID int64) (res []dto.ProductResponse, err error) {
	products, err := s.repo.GetProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	res = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		res = append(res, toProductResponse(product))
	}

	return res, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest) (res dto.ProductResponse, err error) {
	if payload.Name == "" || len(payload.Price) == 0 || payload.SellerID == 0 {
		return res, errs.ErrMissingFields
	}

	price, err := parsePrice(payload.Price)
	if err != nil {
		return res, err
	}

	product := domain.Product{
		Name:     payload.Name,
		Price:    price,
		Image:    payload.Image,
		SellerID: payload.SellerID,
	}

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return res, err
	}

	created, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return res, err
	}

	return toProductResponse(created), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id int64, payload dto.ProductRequest) (res dto.ProductResponse, err error) {
	price, err := parsePrice(payload.Price)
	if err != nil {
		return res, err
	}

	product := domain.Product{
		ID:    id,
		Name:  payload.Name,
		Price: price,
		Image: payload.Image,
	}

	if err = s.repo.UpdateProduct(ctx, product); err != nil {
		return res, err
	}

	updated, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return res, err
	}

	return toProductResponse(updated), nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	return s.repo.DeleteProduct(ctx, id)
}
