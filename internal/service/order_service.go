package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/internal/dto"
	"github.com/nandaputra/storefront-service/internal/repository"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo, productRepo: productRepo}
}

// parseQuantity accepts the quantity as a JSON number or a numeric string.
// Fractional and non-numeric values are rejected.
func parseQuantity(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, errs.ErrInvalidQuantity
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errs.ErrInvalidQuantity
	}

	switch val := v.(type) {
	case float64:
		qty := int64(val)
		if float64(qty) != val {
			return 0, errs.ErrInvalidQuantity
		}
		return qty, nil
	case string:
		qty, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, errs.ErrInvalidQuantity
		}
		return qty, nil
	default:
		return 0, errs.ErrInvalidQuantity
	}
}

func toOrderItemResponse(item domain.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Product:   toProductResponse(item.Product),
	}
}

func toOrderResponse(order domain.Order) dto.OrderResponse {
	res := dto.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		Items:     make([]dto.OrderItemResponse, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		res.Items = append(res.Items, toOrderItemResponse(item))
	}

	if order.UserName != "" || order.UserEmail != "" {
		res.User = &dto.OrderBuyerResponse{
			Name:  order.UserName,
			Email: order.UserEmail,
		}
	}

	return res
}

// PlaceOrder persists a new order with its line items as one transactional
// unit. The total is recomputed from the referenced products' prices; the
// client-supplied figure is only used to detect drift.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, payload dto.OrderRequest) (res dto.OrderResponse, err error) {
	if payload.UserID == 0 || len(payload.Items) == 0 || payload.Total == nil {
		return res, errs.ErrMissingFields
	}

	lines := make([]domain.OrderItem, 0, len(payload.Items))
	productIDs := make([]int64, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.ProductID == 0 {
			return res, errs.ErrMissingFields
		}
		qty, qtyErr := parseQuantity(item.Quantity)
		if qtyErr != nil {
			return res, qtyErr
		}
		if qty <= 0 {
			return res, errs.ErrInvalidQuantity
		}
		lines = append(lines, domain.OrderItem{ProductID: item.ProductID, Quantity: qty})
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return
	}

	productByID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	var total float64
	for _, line := range lines {
		product, ok := productByID[line.ProductID]
		if !ok {
			return res, errs.ErrOrderProductNotFound
		}
		total += product.Price * float64(line.Quantity)
	}

	if *payload.Total != total {
		log.Warn().
			Float64("client_total", *payload.Total).
			Float64("computed_total", total).
			Int64("user_id", payload.UserID).
			Msg("Client-supplied total diverges from line items; storing the computed value")
	}

	var orderID int64
	err = s.orderRepo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		orderID, err = repo.AddOrder(ctx, domain.Order{
			UserID: payload.UserID,
			Total:  total,
		})
		if err != nil {
			return err
		}

		items := make([]domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			line.OrderID = orderID
			items = append(items, line)
		}

		return repo.AddOrderItems(ctx, items)
	})
	if err != nil {
		return res, errs.ErrInternalServer
	}

	order, err := s.orderRepo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return
	}

	return toOrderResponse(order), nil
}

// GetSellerOrders returns the seller's view of every order containing at
// least one of their products: foreign sellers' lines are dropped and the
// total is recomputed over what remains, so it may differ from the stored
// order total.
func (s *OrderServiceImpl) GetSellerOrders(ctx context.Context, sellerID int64) (res []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrdersBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	res = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		sellerItems := make([]domain.OrderItem, 0, len(order.Items))
		var sellerTotal float64
		for _, item := range order.Items {
			if item.Product.SellerID != sellerID {
				continue
			}
			sellerItems = append(sellerItems, item)
			sellerTotal += item.Product.Price * float64(item.Quantity)
		}

		order.Items = sellerItems
		order.Total = sellerTotal
		res = append(res, toOrderResponse(order))
	}

	return res, nil
}
