package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nandaputra/storefront-service/internal/dto"
)

func (s *IntegrationTestSuite) registerUser(role string) dto.UserResponse {
	resp, body := s.doJSON(http.MethodPost, "/auth/register", dto.RegisterRequest{
		Email:    fmt.Sprintf("%s-%d@store.com", role, time.Now().UnixNano()),
		Password: "secret123",
		Name:     fmt.Sprintf("Integration %s", role),
		Role:     role,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var user dto.UserResponse
	s.Require().NoError(json.Unmarshal(body, &user))
	return user
}

func (s *IntegrationTestSuite) createProduct(sellerID int64, name string, price string) dto.ProductResponse {
	resp, body := s.doJSON(http.MethodPost, "/products", map[string]interface{}{
		"name":     fmt.Sprintf("%s %d", name, time.Now().UnixNano()),
		"price":    price,
		"sellerId": sellerID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var product dto.ProductResponse
	s.Require().NoError(json.Unmarshal(body, &product))
	return product
}

func (s *IntegrationTestSuite) Test_ProductValidation() {
	seller := s.registerUser("seller")

	resp, _ := s.doJSON(http.MethodPost, "/products", map[string]interface{}{
		"name":     "Broken",
		"price":    "abc",
		"sellerId": seller.ID,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.doJSON(http.MethodPost, "/products", map[string]interface{}{
		"price":    "10.00",
		"sellerId": seller.ID,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.doJSON(http.MethodDelete, "/products/notanid", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_CheckoutAndSellerAggregation() {
	alice := s.registerUser("seller")
	bob := s.registerUser("seller")
	buyer := s.registerUser("buyer")

	laptop := s.createProduct(alice.ID, "Laptop", "999.99")
	book := s.createProduct(bob.ID, "Book", "29.99")

	total := 1059.97
	resp, body := s.doJSON(http.MethodPost, "/orders", dto.OrderRequest{
		UserID: buyer.ID,
		Items: []dto.OrderItemRequest{
			{ProductID: laptop.ID, Quantity: json.RawMessage(`1`)},
			{ProductID: book.ID, Quantity: json.RawMessage(`2`)},
		},
		Total: &total,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var order dto.OrderResponse
	s.Require().NoError(json.Unmarshal(body, &order))
	s.Len(order.Items, 2)
	s.InDelta(1059.97, order.Total, 1e-9)

	// Alice sees only her laptop line with a seller-scoped total.
	resp, body = s.doJSON(http.MethodGet, fmt.Sprintf("/orders/seller/%d", alice.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var aliceOrders []dto.OrderResponse
	s.Require().NoError(json.Unmarshal(body, &aliceOrders))
	s.Require().Len(aliceOrders, 1)
	s.Require().Len(aliceOrders[0].Items, 1)
	s.Equal(laptop.ID, aliceOrders[0].Items[0].ProductID)
	s.InDelta(999.99, aliceOrders[0].Total, 1e-9)

	// Bob sees the same order reduced to his two books.
	resp, body = s.doJSON(http.MethodGet, fmt.Sprintf("/orders/seller/%d", bob.ID), nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var bobOrders []dto.OrderResponse
	s.Require().NoError(json.Unmarshal(body, &bobOrders))
	s.Require().Len(bobOrders, 1)
	s.Require().Len(bobOrders[0].Items, 1)
	s.Equal(int64(2), bobOrders[0].Items[0].Quantity)
	s.InDelta(59.98, bobOrders[0].Total, 1e-9)

	// The laptop is now referenced by an order and cannot be deleted.
	resp, _ = s.doJSON(http.MethodDelete, fmt.Sprintf("/products/%d", laptop.ID), nil)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp, _ = s.doJSON(http.MethodGet, fmt.Sprintf("/products/seller/%d", alice.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_DeleteUnreferencedProduct() {
	seller := s.registerUser("seller")
	product := s.createProduct(seller.ID, "Disposable", "5.00")

	resp, body := s.doJSON(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"success":true}`, string(body))

	resp, _ = s.doJSON(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_PlaceOrderValidation() {
	buyer := s.registerUser("buyer")

	total := 10.0
	resp, _ := s.doJSON(http.MethodPost, "/orders", dto.OrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: 1, Quantity: json.RawMessage(`1`)}},
		Total: &total,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.doJSON(http.MethodPost, "/orders", dto.OrderRequest{
		UserID: buyer.ID,
		Items:  []dto.OrderItemRequest{{ProductID: 1, Quantity: json.RawMessage(`1`)}},
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_PlaceOrderQuantityCoercion() {
	seller := s.registerUser("seller")
	buyer := s.registerUser("buyer")
	pen := s.createProduct(seller.ID, "Pen", "2.50")

	// A stringly-typed quantity is coerced, same as the price field.
	resp, body := s.doJSON(http.MethodPost, "/orders", map[string]interface{}{
		"userId": buyer.ID,
		"items":  []map[string]interface{}{{"productId": pen.ID, "quantity": "3"}},
		"total":  7.50,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var order dto.OrderResponse
	s.Require().NoError(json.Unmarshal(body, &order))
	s.Require().Len(order.Items, 1)
	s.Equal(int64(3), order.Items[0].Quantity)

	resp, _ = s.doJSON(http.MethodPost, "/orders", map[string]interface{}{
		"userId": buyer.ID,
		"items":  []map[string]interface{}{{"productId": pen.ID, "quantity": "abc"}},
		"total":  7.50,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
