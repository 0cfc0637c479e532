package dto

type OrderBuyerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderItemResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Product   ProductResponse `json:"product"`
}

type OrderResponse struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"userId"`
	Total     float64             `json:"total"`
	CreatedAt int64               `json:"createdAt"`
	Items     []OrderItemResponse `json:"items"`
	User      *OrderBuyerResponse `json:"user,omitempty"`
}
