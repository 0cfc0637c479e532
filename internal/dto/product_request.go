package dto

import "encoding/json"

// ProductRequest carries the price as raw JSON because clients send it both
// as a number and as a form-field string; the service parses it on every
// write.
type ProductRequest struct {
	Name     string          `json:"name"`
	Price    json.RawMessage `json:"price"`
	Image    *string         `json:"image"`
	SellerID int64           `json:"sellerId"`
}
