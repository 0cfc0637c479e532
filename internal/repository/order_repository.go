package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// queryer is the slice of sqlx shared by *sqlx.DB and *sqlx.Tx, so the same
// repository methods run inside and outside HandleTrx.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type OrderRepositoryImpl struct {
	db *sqlx.DB
	q  queryer
}

func CreateOrderRepository(db *sqlx.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db, q: db}
}

func (r *OrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &OrderRepositoryImpl{
		db: r.db,
		q:  tx,
	}

	err = fn(ctx, trxRepo)

	return err
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().UnixMilli()
	}

	nstmt, err := r.q.PrepareNamedContext(ctx, "INSERT INTO orders(user_id, total, created_at) VALUES (:user_id, :total, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return data.ID, nil
}

func (r *OrderRepositoryImpl) AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error) {
	_, err = r.q.NamedExecContext(ctx, "INSERT INTO order_items(order_id, product_id, quantity) VALUES (:order_id, :product_id, :quantity)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderItems").Msg("")
		return
	}

	return nil
}

type orderItemRow struct {
	ID           int64   `db:"id"`
	OrderID      int64   `db:"order_id"`
	ProductID    int64   `db:"product_id"`
	Quantity     int64   `db:"quantity"`
	ProductName  string  `db:"product_name"`
	ProductPrice float64 `db:"product_price"`
	ProductImage *string `db:"product_image"`
	SellerID     int64   `db:"seller_id"`
}

func (row orderItemRow) toDomain() domain.OrderItem {
	return domain.OrderItem{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		Product: domain.Product{
			ID:       row.ProductID,
			Name:     row.ProductName,
			Price:    row.ProductPrice,
			Image:    row.ProductImage,
			SellerID: row.SellerID,
		},
	}
}

const orderItemColumns = "oi.id, oi.order_id, oi.product_id, oi.quantity, p.name AS product_name, p.price AS product_price, p.image AS product_image, p.seller_id"

func (r *OrderRepositoryImpl) GetOrderWithItems(ctx context.Context, id int64) (data domain.Order, err error) {
	row := r.q.QueryRowxContext(ctx, "SELECT id, user_id, total, created_at FROM orders WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrderWithItems").Msg("")
		return data, errs.ErrInternalServer
	}

	var itemRows []orderItemRow
	err = r.q.SelectContext(ctx, &itemRows, "SELECT "+orderItemColumns+" FROM order_items oi JOIN products p ON p.id = oi.product_id WHERE oi.order_id = $1 ORDER BY oi.id", id)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrderWithItems").Msg("")
		return data, errs.ErrInternalServer
	}

	for _, itemRow := range itemRows {
		data.Items = append(data.Items, itemRow.toDomain())
	}

	return data, nil
}

func (r *OrderRepositoryImpl) GetOrdersBySeller(ctx context.Context, sellerID int64) (data []domain.Order, err error) {
	err = r.q.SelectContext(ctx, &data, "SELECT o.id, o.user_id, o.total, o.created_at, u.name AS user_name, u.email AS user_email FROM orders o JOIN users u ON u.id = o.user_id WHERE o.id IN (SELECT oi.order_id FROM order_items oi JOIN products p ON p.id = oi.product_id WHERE p.seller_id = $1) ORDER BY o.id", sellerID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersBySeller").Msg("")
		return nil, errs.ErrInternalServer
	}

	if len(data) == 0 {
		return data, nil
	}

	orderIDs := make([]int64, len(data))
	orderIdx := make(map[int64]int, len(data))
	for i, order := range data {
		orderIDs[i] = order.ID
		orderIdx[order.ID] = i
	}

	var itemRows []orderItemRow
	err = r.q.SelectContext(ctx, &itemRows, "SELECT "+orderItemColumns+" FROM order_items oi JOIN products p ON p.id = oi.product_id WHERE oi.order_id = ANY($1) ORDER BY oi.id", pq.Array(orderIDs))
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersBySeller").Msg("")
		return nil, errs.ErrInternalServer
	}

	for _, itemRow := range itemRows {
		i := orderIdx[itemRow.OrderID]
		data[i].Items = append(data[i].Items, itemRow.toDomain())
	}

	return data, nil
}
