package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/internal/repository/specification"
	"ai-ordering-be/internal/repository/unitofwork"
	"ai-ordering-be/pkg/cache"

	"github.com/google/uuid"
)

const catalogCacheTTL = 5 * time.Minute

type ICatalogService interface {
	// AvailableItems returns the orderable catalog in position order.
	AvailableItems(ctx context.Context, businessId uuid.UUID) ([]*entity.Item, error)
	// AllItems includes unavailable items; cancellation needs them because
	// an item may go off-catalog after an order was placed.
	AllItems(ctx context.Context, businessId uuid.UUID) ([]*entity.Item, error)
	Business(ctx context.Context, businessId uuid.UUID) (*entity.Business, error)
	InvalidateBusiness(ctx context.Context, businessId uuid.UUID)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      cache.Service
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, cacheService cache.Service) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      cacheService,
	}
}

func itemsCacheKey(businessId uuid.UUID) string {
	return "catalog:items:" + businessId.String()
}

func businessCacheKey(businessId uuid.UUID) string {
	return "catalog:business:" + businessId.String()
}

func (s *catalogService) AvailableItems(ctx context.Context, businessId uuid.UUID) ([]*entity.Item, error) {
	items, err := s.AllItems(ctx, businessId)
	if err != nil {
		return nil, err
	}
	available := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

func (s *catalogService) AllItems(ctx context.Context, businessId uuid.UUID) ([]*entity.Item, error) {
	key := itemsCacheKey(businessId)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var items []*entity.Item
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		// Corrupt cache entry: drop it and fall through to the store.
		s.cache.Invalidate(ctx, key)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ItemRepository().FindAll(ctx, specification.ByBusinessID{BusinessID: businessId})
	if err != nil {
		return nil, apperror.TransientStore(err)
	}

	if raw, err := json.Marshal(items); err == nil {
		s.cache.Set(ctx, key, raw, catalogCacheTTL)
	} else {
		log.Printf("[WARN] Failed to marshal items for cache: %v", err)
	}

	return items, nil
}

func (s *catalogService) Business(ctx context.Context, businessId uuid.UUID) (*entity.Business, error) {
	key := businessCacheKey(businessId)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var business entity.Business
		if err := json.Unmarshal(raw, &business); err == nil {
			return &business, nil
		}
		s.cache.Invalidate(ctx, key)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	business, err := uow.BusinessRepository().FindOne(ctx, specification.ByID{ID: businessId})
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if business == nil {
		return nil, apperror.NotFound(apperror.CodeBusinessNotFound, "business not found")
	}

	if raw, err := json.Marshal(business); err == nil {
		s.cache.Set(ctx, key, raw, catalogCacheTTL)
	}

	return business, nil
}

func (s *catalogService) InvalidateBusiness(ctx context.Context, businessId uuid.UUID) {
	s.cache.Invalidate(ctx, itemsCacheKey(businessId))
	s.cache.Invalidate(ctx, businessCacheKey(businessId))
}

// ItemsById indexes a catalog slice for line lookups.
func ItemsById(items []*entity.Item) map[uuid.UUID]*entity.Item {
	byId := make(map[uuid.UUID]*entity.Item, len(items))
	for _, item := range items {
		byId[item.Id] = item
	}
	return byId
}
