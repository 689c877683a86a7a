package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sale-relay/internal/client"
	"sale-relay/internal/dto"
	"sale-relay/internal/logger"
	"sale-relay/internal/model"
	"sale-relay/internal/service"
)

//go:generate mockgen -source internal/service/sale.go -destination=internal/handler/sale_mock_test.go -package=handler

type SaleHandler struct {
	saleService service.SaleService
	logger      *zap.Logger
}

func NewSaleHandler(saleService service.SaleService, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

func (h *SaleHandler) Sell(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromContext(ctx, h.logger)

	var stub model.PaypalOrder
	if err := c.Bind(&stub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.saleService.Sell(ctx, &stub)
	if err != nil {
		log.Error("sell", zap.String("order_id", stub.ID), zap.Error(err))
		return saleError(err)
	}

	if len(result.Failed) > 0 {
		return c.JSON(http.StatusBadGateway, &dto.SellFailedResponse{
			Message: "some fossils could not be marked as sold",
			OrderID: result.OrderID,
			Sold:    result.Sold,
			Failed:  result.Failed,
		})
	}

	return c.JSON(http.StatusOK, &dto.MessageResponse{Message: dto.SoldMessage})
}

func saleError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrMalformedReference):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "order reference is malformed")
	case errors.Is(err, service.ErrOrderNotCompleted):
		return echo.NewHTTPError(http.StatusConflict, "order is not completed")
	case errors.Is(err, client.ErrOrderLinkNotFound), errors.Is(err, client.ErrUntrustedOrderLink):
		return echo.NewHTTPError(http.StatusBadRequest, "order cannot be verified")
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "order verification failed")
	}
}
