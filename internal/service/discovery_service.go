package service

import (
	"context"
	"strings"
	"time"

	"notevision-be/internal/repository/specification"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/pkg/aggregate"

	gocache "github.com/patrickmn/go-cache"
)

type IDiscoveryService interface {
	SearchPublic(ctx context.Context, query string) ([]aggregate.PublicResult, error)
}

// discoveryService serves the public notebook search. Ranked result pages
// are cached briefly since like counts drift and the same queries repeat.
type discoveryService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	cacheTTL   time.Duration
}

func NewDiscoveryService(uowFactory unitofwork.RepositoryFactory, cacheTTL time.Duration) IDiscoveryService {
	return &discoveryService{
		uowFactory: uowFactory,
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
		cacheTTL:   cacheTTL,
	}
}

func (c *discoveryService) SearchPublic(ctx context.Context, query string) ([]aggregate.PublicResult, error) {
	cacheKey := "public_search:" + strings.ToLower(strings.TrimSpace(query))
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]aggregate.PublicResult), nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.IsPublic{})
	if err != nil {
		return nil, err
	}

	results := aggregate.RankPublic(notebooks, query)
	c.cache.Set(cacheKey, results, c.cacheTTL)

	return results, nil
}
