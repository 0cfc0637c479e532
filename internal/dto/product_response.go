package dto

type SellerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     float64         `json:"price"`
	Image     *string         `json:"image"`
	SellerID  int64           `json:"sellerId"`
	Seller    *SellerResponse `json:"seller,omitempty"`
	CreatedAt int64           `json:"createdAt,omitempty"`
	UpdatedAt int64           `json:"updatedAt,omitempty"`
}

type DeleteProductResponse struct {
	Success bool `json:"success"`
}
