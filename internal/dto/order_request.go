package dto

import "encoding/json"

// OrderItemRequest carries quantity as raw JSON so a number and a numeric
// string are both accepted, same as the product price field.
type OrderItemRequest struct {
	ProductID int64           `json:"productId"`
	Quantity  json.RawMessage `json:"quantity"`
}

// OrderRequest is the checkout payload. Total is a pointer so that an absent
// field can be told apart from an explicit zero.
type OrderRequest struct {
	UserID int64              `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
	Total  *float64           `json:"total"`
}
