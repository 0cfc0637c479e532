package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

// foreignKeyViolation is the PostgreSQL class 23 code raised when a delete
// would orphan dependent order items.
const foreignKeyViolation = pq.ErrorCode("23503")

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT p.id, p.name, p.price, p.image, p.seller_id, p.created_at, p.updated_at, u.name AS seller_name FROM products p JOIN users u ON u.id = p.seller_id ORDER BY p.id")
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductsBySeller(ctx context.Context, sellerID int64) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT id, name, price, image, seller_id, created_at, updated_at FROM products WHERE seller_id = $1 ORDER BY id", sellerID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []int64) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT id, name, price, image, seller_id, created_at, updated_at FROM products WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, name, price, image, seller_id, created_at, updated_at FROM products WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(name, price, image, seller_id, created_at, updated_at) VALUES (:name, :price, :image, :seller_id, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return data.ID, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	res, err := r.db.NamedExecContext(ctx, "UPDATE products SET name = :name, price = :price, image = :image, updated_at = :updated_at WHERE id = :id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return errs.ErrProductReferenced
		}
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepositoryImpl) UpsertProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(name, price, image, seller_id, created_at, updated_at) VALUES (:name, :price, :image, :seller_id, :created_at, :updated_at) ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price, image = EXCLUDED.image, seller_id = EXCLUDED.seller_id, updated_at = EXCLUDED.updated_at returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertProduct").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpsertProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return data.ID, nil
}
