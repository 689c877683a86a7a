package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sale-relay/internal/client"
	"sale-relay/internal/logger"
	"sale-relay/internal/model"
)

var ErrOrderNotCompleted = errors.New("paypal order is not completed")

type SaleService interface {
	// Sell verifies a checkout with PayPal, marks every referenced fossil sold
	// and revalidates the affected pages. It returns once all items are done.
	Sell(ctx context.Context, stub *model.PaypalOrder) (*SaleResult, error)
}

type SaleResult struct {
	OrderID   string
	Reference *SaleReference
	// Sold and Failed keep the order of Reference.IDs.
	Sold   []string
	Failed []string
}

type saleServiceImpl struct {
	paypalClient     client.PaypalClient
	contentClient    client.ContentClient
	revalidator      client.Revalidator
	requireCompleted bool
	concurrency      int
	logger           *zap.Logger
}

// NewSaleService builds the sale flow. concurrency caps how many fossils are
// updated at once; 0 means no cap.
func NewSaleService(
	paypalClient client.PaypalClient,
	contentClient client.ContentClient,
	revalidator client.Revalidator,
	requireCompleted bool,
	concurrency int,
	logger *zap.Logger,
) SaleService {
	return &saleServiceImpl{
		paypalClient:     paypalClient,
		contentClient:    contentClient,
		revalidator:      revalidator,
		requireCompleted: requireCompleted,
		concurrency:      concurrency,
		logger:           logger,
	}
}

func (s *saleServiceImpl) Sell(ctx context.Context, stub *model.PaypalOrder) (*SaleResult, error) {
	log := logger.FromContext(ctx, s.logger)

	order, err := s.paypalClient.GetOrder(ctx, stub)
	if err != nil {
		return nil, fmt.Errorf("verify paypal order: %w", err)
	}
	log = log.With(zap.String("order_id", order.ID), zap.String("order_status", order.Status))

	if s.requireCompleted && order.Status != model.OrderStatusCompleted {
		return nil, fmt.Errorf("%w: status %q", ErrOrderNotCompleted, order.Status)
	}

	if len(order.PurchaseUnits) == 0 {
		return nil, fmt.Errorf("%w: order %s has no purchase units", ErrMalformedReference, order.ID)
	}
	unit := order.PurchaseUnits[0]

	ref, err := ParseSaleReference(unit.ReferenceID)
	if err != nil {
		return nil, err
	}
	checkTotal(log, ref, unit.Amount)

	log.Info("marking fossils sold", zap.Strings("ids", ref.IDs))

	// the order is paid, so the updates run even if the caller goes away
	sellCtx := context.WithoutCancel(ctx)

	errs := make([]error, len(ref.IDs))
	g := new(errgroup.Group)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, id := range ref.IDs {
		g.Go(func() error {
			errs[i] = s.sellFossil(sellCtx, log, id)
			return nil
		})
	}
	_ = g.Wait()

	result := &SaleResult{OrderID: order.ID, Reference: ref}
	for i, id := range ref.IDs {
		if errs[i] != nil {
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Sold = append(result.Sold, id)
	}

	return result, nil
}

// sellFossil marks one fossil sold, then revalidates its page and its category
// page. Only the update error is returned.
func (s *saleServiceImpl) sellFossil(ctx context.Context, log *zap.Logger, id string) error {
	log = log.With(zap.String("fossil_id", id))

	fossil, err := s.contentClient.MarkSold(ctx, id)
	if err != nil {
		log.Error("mark fossil sold", zap.Error(err))
		return err
	}

	if fossil.Slug == "" {
		log.Warn("sold fossil has no slug, skipping revalidation")
		return nil
	}
	revalidate(ctx, s.revalidator, log, fossilsPath+"/"+fossil.Slug)

	if slug := fossil.CategorySlug(); slug != "" {
		revalidate(ctx, s.revalidator, log, categoriesPath+"/"+slug)
	}
	return nil
}

func checkTotal(log *zap.Logger, ref *SaleReference, amount model.Amount) {
	if !ref.Total.Valid || amount.Value == "" {
		return
	}
	paid, err := decimal.NewFromString(amount.Value)
	if err != nil {
		log.Warn("unreadable order amount", zap.String("amount", amount.Value), zap.Error(err))
		return
	}
	if !paid.Equal(ref.Total.Decimal) {
		log.Warn("reference total differs from captured amount",
			zap.String("reference_total", ref.Total.Decimal.String()),
			zap.String("amount", paid.String()),
			zap.String("currency", amount.Currency),
		)
	}
}
