package service

import (
	"context"
	"fmt"

	"giftshop-chatbot-be/internal/constant"
	"giftshop-chatbot-be/internal/pkg/logger"
	"giftshop-chatbot-be/pkg/catalog"

	"github.com/patrickmn/go-cache"
)

// ICatalogService exposes storefront reference data. The Get* methods
// return errors for the HTTP surface; the unprefixed methods degrade
// failures to empty results so the dialogue engine can keep answering
// while the storefront API is down.
type ICatalogService interface {
	GetCategories(ctx context.Context) ([]catalog.Category, error)
	GetOccasions(ctx context.Context) ([]catalog.Occasion, error)
	GetProducts(ctx context.Context, categoryId, occasionId int64) ([]catalog.Product, error)
	GetGiftOptions(ctx context.Context, kind catalog.GiftOptionKind) ([]catalog.GiftOption, error)

	Categories(ctx context.Context) []catalog.Category
	Occasions(ctx context.Context) []catalog.Occasion
	Products(ctx context.Context) []catalog.Product
	ProductsByCategory(ctx context.Context, categoryId int64) []catalog.Product
	ProductsByOccasion(ctx context.Context, occasionId int64) []catalog.Product
	HasGiftOptions(ctx context.Context) bool
}

type catalogService struct {
	client *catalog.Client
	cache  *cache.Cache
	logger logger.ILogger
}

func NewCatalogService(client *catalog.Client, log logger.ILogger) ICatalogService {
	return &catalogService{
		client: client,
		cache:  cache.New(constant.CatalogCacheTTL, constant.CatalogCacheTTL),
		logger: log,
	}
}

func (s *catalogService) GetCategories(ctx context.Context) ([]catalog.Category, error) {
	const key = "categories"
	if x, found := s.cache.Get(key); found {
		return x.([]catalog.Category), nil
	}
	categories, err := s.client.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, categories, cache.DefaultExpiration)
	return categories, nil
}

func (s *catalogService) GetOccasions(ctx context.Context) ([]catalog.Occasion, error) {
	const key = "occasions"
	if x, found := s.cache.Get(key); found {
		return x.([]catalog.Occasion), nil
	}
	occasions, err := s.client.GetOccasions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, occasions, cache.DefaultExpiration)
	return occasions, nil
}

func (s *catalogService) GetProducts(ctx context.Context, categoryId, occasionId int64) ([]catalog.Product, error) {
	key := fmt.Sprintf("products:%d:%d", categoryId, occasionId)
	if x, found := s.cache.Get(key); found {
		return x.([]catalog.Product), nil
	}
	products, err := s.client.GetProducts(ctx, categoryId, occasionId)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, products, cache.DefaultExpiration)
	return products, nil
}

func (s *catalogService) GetGiftOptions(ctx context.Context, kind catalog.GiftOptionKind) ([]catalog.GiftOption, error) {
	key := fmt.Sprintf("gift-options:%s", kind)
	if x, found := s.cache.Get(key); found {
		return x.([]catalog.GiftOption), nil
	}
	options, err := s.client.GetGiftOptions(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, options, cache.DefaultExpiration)
	return options, nil
}

// --- Degraded accessors for the dialogue engine ---

func (s *catalogService) Categories(ctx context.Context) []catalog.Category {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		s.logger.Warn("CatalogService", "Category fetch failed, degrading to empty", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return categories
}

func (s *catalogService) Occasions(ctx context.Context) []catalog.Occasion {
	occasions, err := s.GetOccasions(ctx)
	if err != nil {
		s.logger.Warn("CatalogService", "Occasion fetch failed, degrading to empty", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return occasions
}

func (s *catalogService) Products(ctx context.Context) []catalog.Product {
	products, err := s.GetProducts(ctx, 0, 0)
	if err != nil {
		s.logger.Warn("CatalogService", "Product fetch failed, degrading to empty", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return products
}

func (s *catalogService) ProductsByCategory(ctx context.Context, categoryId int64) []catalog.Product {
	products, err := s.GetProducts(ctx, categoryId, 0)
	if err != nil {
		s.logger.Warn("CatalogService", "Product fetch by category failed, degrading to empty", map[string]interface{}{
			"category_id": categoryId,
			"error":       err.Error(),
		})
		return nil
	}
	return products
}

func (s *catalogService) ProductsByOccasion(ctx context.Context, occasionId int64) []catalog.Product {
	products, err := s.GetProducts(ctx, 0, occasionId)
	if err != nil {
		s.logger.Warn("CatalogService", "Product fetch by occasion failed, degrading to empty", map[string]interface{}{
			"occasion_id": occasionId,
			"error":       err.Error(),
		})
		return nil
	}
	return products
}

// HasGiftOptions reports whether any gift-wrapping inventory exists, for
// the upsell suffix on category replies. Errors read as "no options".
func (s *catalogService) HasGiftOptions(ctx context.Context) bool {
	for _, kind := range []catalog.GiftOptionKind{
		catalog.GiftOptionWrappingPaper,
		catalog.GiftOptionDecorativeAccessory,
		catalog.GiftOptionCardType,
	} {
		options, err := s.GetGiftOptions(ctx, kind)
		if err != nil {
			continue
		}
		if len(options) > 0 {
			return true
		}
	}
	return false
}
