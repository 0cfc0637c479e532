package domain

type Order struct {
	ID        int64   `db:"id"`
	UserID    int64   `db:"user_id"`
	Total     float64 `db:"total"`
	CreatedAt int64   `db:"created_at"`
	Items     []OrderItem

	// UserName and UserEmail are only populated by queries that join the buyer.
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}

type OrderItem struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int64 `db:"quantity"`
	Product   Product
}
