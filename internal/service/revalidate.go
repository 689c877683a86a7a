package service

import (
	"context"

	"go.uber.org/zap"

	"sale-relay/internal/client"
	"sale-relay/internal/logger"
	"sale-relay/internal/model"
)

const (
	fossilsPath    = "fossils"
	categoriesPath = "categories"
)

// pagePaths maps a CMS model to the front-end route that renders it.
var pagePaths = map[string]string{
	model.ContentModelFossil:   fossilsPath,
	model.ContentModelCategory: categoriesPath,
}

type RevalidateService interface {
	// HandleContentEvent revalidates the pages affected by a CMS change and
	// returns the paths it asked the front end to rebuild. Failures are logged.
	HandleContentEvent(ctx context.Context, event *model.ContentEvent) []string
}

type revalidateServiceImpl struct {
	revalidator client.Revalidator
	logger      *zap.Logger
}

func NewRevalidateService(revalidator client.Revalidator, logger *zap.Logger) RevalidateService {
	return &revalidateServiceImpl{
		revalidator: revalidator,
		logger:      logger,
	}
}

func (s *revalidateServiceImpl) HandleContentEvent(ctx context.Context, event *model.ContentEvent) []string {
	log := logger.FromContext(ctx, s.logger).With(
		zap.String("event", event.Event),
		zap.String("model", event.Model),
		zap.String("slug", event.Entry.Slug),
	)

	base, ok := pagePaths[event.Model]
	if !ok || event.Entry.Slug == "" {
		log.Debug("content event ignored")
		return nil
	}

	paths := []string{base + "/" + event.Entry.Slug}
	if event.Model == model.ContentModelFossil && event.Entry.Category != nil && event.Entry.Category.Slug != "" {
		paths = append(paths, categoriesPath+"/"+event.Entry.Category.Slug)
	}

	// item page first, then its category
	for _, path := range paths {
		revalidate(ctx, s.revalidator, log, path)
	}

	return paths
}

func revalidate(ctx context.Context, revalidator client.Revalidator, log *zap.Logger, path string) {
	if err := revalidator.Revalidate(ctx, path); err != nil {
		log.Warn("revalidation failed", zap.String("path", path), zap.Error(err))
		return
	}
	log.Info("page revalidated", zap.String("path", path))
}
