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

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/seller/:sellerId", c.GetProductsBySeller)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	res, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, res)
}

func (c *ProductController) GetProductsBySeller(e echo.Context) error {
	sellerID, err := strconv.ParseInt(e.Param("sellerId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	res, err := c.service.GetProductsBySeller(e.Request().Context(), sellerID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, res)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	res, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, res)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrInvalidProductID)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	res, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, res)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrInvalidProductID)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, dto.DeleteProductResponse{Success: true})
}
