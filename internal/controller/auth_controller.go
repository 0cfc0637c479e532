package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nandaputra/storefront-service/internal/dto"
	"github.com/nandaputra/storefront-service/internal/service"
	"github.com/nandaputra/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService) {
	c := AuthController{
		service: service,
	}

	e.POST("/auth/register", c.Register)
	e.POST("/auth/login", c.Login)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	res, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, res)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	res, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, res)
}
