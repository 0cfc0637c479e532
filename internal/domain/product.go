package domain

type Product struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Image     *string `db:"image"`
	SellerID  int64   `db:"seller_id"`
	CreatedAt int64   `db:"created_at"`
	UpdatedAt int64   `db:"updated_at"`

	// SellerName is only populated by queries that join the owning seller.
	SellerName string `db:"seller_name"`
}
