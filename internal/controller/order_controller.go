package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nandaputra/storefront-service/internal/dto"
	"github.com/nandaputra/storefront-service/internal/service"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/nandaputra/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService) {
	c := OrderController{
		service: service,
	}

	e.POST("/orders", c.PlaceOrder)
	e.GET("/orders/seller/:sellerId", c.GetSellerOrders)
}

func (c *OrderController) PlaceOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "PlaceOrder").Msg("")
	}

	res, err := c.service.PlaceOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, res)
}

func (c *OrderController) GetSellerOrders(e echo.Context) error {
	sellerID, err := strconv.ParseInt(e.Param("sellerId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	res, err := c.service.GetSellerOrders(e.Request().Context(), sellerID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, res)
}
