package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(name, email, external_id, hashed_password, role, created_at, updated_at) VALUES (:name, :email, :external_id, :hashed_password, :role, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return data.ID, nil
}
