package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/nandaputra/storefront-service/config"
	"github.com/nandaputra/storefront-service/internal/controller"
	"github.com/nandaputra/storefront-service/internal/infrastructure/tracing"
	localmiddleware "github.com/nandaputra/storefront-service/internal/middleware"
	"github.com/nandaputra/storefront-service/internal/repository"
	"github.com/nandaputra/storefront-service/internal/service"
	"github.com/nandaputra/storefront-service/pkg/errs"
	"github.com/nandaputra/storefront-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo

	traceProvider *sdktrace.TracerProvider
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		app.traceProvider = traceProvider
		tracer := traceProvider.Tracer("storefront-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(echomiddleware.Recover())
	e.Use(localmiddleware.RequestLogger)

	// Unmatched routes and uncaught failures reduce to the fixed JSON error
	// bodies the clients rely on; nothing else crosses the HTTP boundary.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && (httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: errs.ErrRouteNotFound.Error()})
			return
		}

		log.Error().Err(err).Str("component", "HTTPErrorHandler").Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: errs.ErrInternalServer.Error()})
	}

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("")

	userRepo := repository.CreateUserRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	orderRepo := repository.CreateOrderRepository(app.DB)

	authSvc := service.CreateAuthService(userRepo)
	productSvc := service.CreateProductService(productRepo)
	orderSvc := service.CreateOrderService(orderRepo, productRepo)

	controller.CreateHealthController(g, app.DB)
	controller.CreateAuthController(g, authSvc)
	controller.CreateProductController(g, productSvc)
	controller.CreateOrderController(g, orderSvc)

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.traceProvider != nil {
		if err := app.traceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}

	if app.Server == nil {
		return nil
	}

	return app.Server.Shutdown(ctx)
}
