package service

import (
	"context"

	"github.com/nandaputra/storefront-service/internal/domain"
	"github.com/nandaputra/storefront-service/internal/dto"
	"github.com/nandaputra/storefront-service/internal/repository"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	repo repository.UserRepository
}

func CreateAuthService(repo repository.UserRepository) AuthService {
	return &AuthServiceImpl{repo: repo}
}

func (s *AuthServiceImpl) Register(ctx context.Context, payload dto.RegisterRequest) (res dto.UserResponse, err error) {
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		return res, errs.ErrMissingFields
	}

	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return res, errs.ErrEmailAlreadyUsed
	}

	role := payload.Role
	if role == "" {
		role = domain.RoleBuyer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return res, errs.ErrInternalServer
	}

	userEnt := domain.User{
		Name:           payload.Name,
		Email:          payload.Email,
		HashedPassword: string(hash),
		Role:           role,
		ExternalID:     ulid.Make().String(),
	}

	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return res, errs.ErrInternalServer
	}

	res = dto.UserResponse{
		ID:    id,
		Email: userEnt.Email,
		Name:  userEnt.Name,
		Role:  userEnt.Role,
	}

	return res, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (res dto.UserResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return res, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return res, errs.ErrInvalidPassword
	}

	res = dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}

	return res, nil
}
