package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sale-relay/internal/logger"
	"sale-relay/internal/model"
	"sale-relay/internal/service"
)

//go:generate mockgen -source internal/service/revalidate.go -destination=internal/handler/revalidate_mock_test.go -package=handler

type ContentHandler struct {
	revalidateService service.RevalidateService
	logger            *zap.Logger
}

func NewContentHandler(revalidateService service.RevalidateService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		revalidateService: revalidateService,
		logger:            logger,
	}
}

// Revalidate handles CMS webhooks. It always answers 200 with an empty body so
// the CMS never retries or disables the hook.
func (h *ContentHandler) Revalidate(c echo.Context) error {
	ctx := c.Request().Context()

	var event model.ContentEvent
	if err := c.Bind(&event); err != nil {
		logger.FromContext(ctx, h.logger).Warn("undecodable content webhook", zap.Error(err))
		return c.NoContent(http.StatusOK)
	}

	h.revalidateService.HandleContentEvent(ctx, &event)

	return c.NoContent(http.StatusOK)
}
