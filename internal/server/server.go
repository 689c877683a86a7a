package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"sale-relay/internal/config"
	"sale-relay/internal/handler"
	relaymw "sale-relay/internal/middleware"
	"sale-relay/internal/service"
)

type Server struct {
	echo           *echo.Echo
	contentHandler *handler.ContentHandler
	saleHandler    *handler.SaleHandler
}

func NewServer(
	httpCfg *config.HTTPServer,
	revalidateService service.RevalidateService,
	saleService service.SaleService,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(relaymw.ContextLogger(logger))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: httpCfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	s := &Server{
		echo:           e,
		contentHandler: handler.NewContentHandler(revalidateService, logger),
		saleHandler:    handler.NewSaleHandler(saleService, logger),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", handler.Health)
	s.echo.GET("/login", handler.Login)

	// -------- cms webhooks --------
	s.echo.POST("/revalidate", s.contentHandler.Revalidate)

	// -------- storefront checkout --------
	s.echo.POST("/sell", s.saleHandler.Sell)
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
