package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
)

const keyPrefix = "catalog:products:"

// RedisCache кэш выборок каталога
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache создает кэш с заданным TTL
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get возвращает товары из кэша. found=false при промахе.
func (c *RedisCache) Get(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, bool, error) {
	val, err := c.client.Get(ctx, key(filter)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	products, err := decode(val)
	if err != nil {
		return nil, false, err
	}
	return products, true, nil
}

// Set сохраняет выборку
func (c *RedisCache) Set(ctx context.Context, filter domain.ProductFilter, products []*domain.Product) error {
	data, err := encode(products)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key(filter), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}
	return nil
}

func key(filter domain.ProductFilter) string {
	f := filter.Normalize()
	return keyPrefix + f.Category + ":" + f.Search
}

func encode(products []*domain.Product) ([]byte, error) {
	data, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) ([]*domain.Product, error) {
	var products []*domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return products, nil
}
