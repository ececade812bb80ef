package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/inkhouse/ecommerce-backend/internal/config"
	"github.com/inkhouse/ecommerce-backend/internal/handler"
	infraRepo "github.com/inkhouse/ecommerce-backend/internal/infra/repository"
	"github.com/inkhouse/ecommerce-backend/internal/metrics"
	"github.com/inkhouse/ecommerce-backend/internal/middleware"
	"github.com/inkhouse/ecommerce-backend/internal/usecase"
	"github.com/inkhouse/ecommerce-backend/internal/validator"
)

type Server struct {
	echo *echo.Echo
	cfg  config.Config
	log  zerolog.Logger
}

type Handlers struct {
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	User    *handler.UserHandler
	Health  *handler.HealthHandler
}

// New builds the echo instance with the global middleware and routes.
func New(cfg config.Config, log zerolog.Logger, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(log)

	// Recover は logger / metrics の内側。panic も 500 として記録される
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(metrics.Middleware())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(middleware.Authorize(cfg.Policy()))

	s := &Server{echo: e, cfg: cfg, log: log}
	s.registerRoutes(h)
	return s
}

// Wire builds the repository → usecase → handler graph on top of gdb.
func Wire(cfg config.Config, log zerolog.Logger, gdb *gorm.DB) (*Server, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gdb)
	orderRepo := infraRepo.NewOrderGormRepository(gdb)
	userRepo := infraRepo.NewUserGormRepository(gdb)

	//Usecase生成
	clock := usecase.SystemClock{}
	hasher := usecase.NewBcryptPasswordHasher(cfg.BcryptCost)

	productUC := usecase.NewProductUsecase(productRepo, clock, log)
	orderUC := usecase.NewOrderUsecase(orderRepo, clock, log)
	userUC := usecase.NewUserUsecase(userRepo, hasher, clock, log)

	//Handler生成
	return New(cfg, log, Handlers{
		Product: handler.NewProductHandler(productUC),
		Order:   handler.NewOrderHandler(orderUC),
		User:    handler.NewUserHandler(userUC),
		Health:  handler.NewHealthHandler(sqlDB),
	}), nil
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("http server starting")
		if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
