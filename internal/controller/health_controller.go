package controller

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/nandaputra/storefront-service/internal/dto"
	"github.com/nandaputra/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type HealthController struct {
	db *sqlx.DB
}

func CreateHealthController(e *echo.Group, db *sqlx.DB) {
	c := HealthController{db: db}

	e.GET("/health", c.Health)
}

func (c *HealthController) Health(e echo.Context) error {
	if err := c.db.PingContext(e.Request().Context()); err != nil {
		log.Error().Err(err).Str("component", "Health").Msg("")
		return response.WriteJSONResponse(e, http.StatusInternalServerError, dto.HealthResponse{
			Status:   "Error",
			Database: "Disconnected",
		})
	}

	return response.WriteJSONResponse(e, http.StatusOK, dto.HealthResponse{
		Status:   "OK",
		Database: "Connected",
	})
}
