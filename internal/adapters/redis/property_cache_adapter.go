package redis_adapter

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/constants"
	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/redis/go-redis/v9"
)

// RedisPropertyCacheAdapter кэширует результаты List.
// Ключ включает номер поколения: InvalidateLists увеличивает его,
// и все старые ключи перестают читаться, а затем истекают по TTL.
type RedisPropertyCacheAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPropertyCacheAdapter(client *redis.Client, ttl time.Duration) (*RedisPropertyCacheAdapter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache TTL must be positive, got %s", ttl)
	}
	return &RedisPropertyCacheAdapter{client: client, ttl: ttl}, nil
}

// GetList читает номер поколения один раз. Возвращаемый Slot привязан
// к этому поколению и при промахе передается в SetList.
func (a *RedisPropertyCacheAdapter) GetList(ctx context.Context, filters domain.PropertyFilters) (port.ListLookup, error) {
	key, err := a.listKey(ctx, filters)
	if err != nil {
		return port.ListLookup{}, err
	}

	data, err := a.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return port.ListLookup{Slot: key}, nil
	}
	if err != nil {
		return port.ListLookup{}, fmt.Errorf("redis get %s: %w", key, err)
	}

	var properties []domain.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		// битая запись перезапишется свежим списком
		return port.ListLookup{Slot: key}, fmt.Errorf("decode cached list %s: %w", key, err)
	}
	for i := range properties {
		properties[i].Normalize()
	}

	contextkeys.LoggerFromContext(ctx).Debug("Cache hit", port.Fields{"component": "RedisPropertyCache", "key": key})
	return port.ListLookup{Properties: properties, Found: true, Slot: key}, nil
}

func (a *RedisPropertyCacheAdapter) SetList(ctx context.Context, slot string, properties []domain.Property) error {
	if slot == "" {
		return fmt.Errorf("cache slot is required")
	}

	data, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("encode list for cache: %w", err)
	}
	if err := a.client.Set(ctx, slot, data, a.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", slot, err)
	}
	return nil
}

func (a *RedisPropertyCacheAdapter) InvalidateLists(ctx context.Context) error {
	if err := a.client.Incr(ctx, constants.CacheKeyPropertyListGen).Err(); err != nil {
		return fmt.Errorf("redis incr %s: %w", constants.CacheKeyPropertyListGen, err)
	}
	return nil
}

func (a *RedisPropertyCacheAdapter) Close() error {
	return a.client.Close()
}

func (a *RedisPropertyCacheAdapter) listKey(ctx context.Context, filters domain.PropertyFilters) (string, error) {
	gen, err := a.client.Get(ctx, constants.CacheKeyPropertyListGen).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis get %s: %w", constants.CacheKeyPropertyListGen, err)
	}
	return listCacheKey(gen, filters), nil
}

// listCacheKey: "properties:list:<gen>:<md5 отсортированных параметров>"
func listCacheKey(gen int64, filters domain.PropertyFilters) string {
	params := filterParams(filters)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return fmt.Sprintf("%s:%d:%s", constants.CacheKeyPropertyListPrefix, gen, hex.EncodeToString(hash[:]))
}

func filterParams(f domain.PropertyFilters) map[string]string {
	params := make(map[string]string)
	if f.Type != nil {
		params["type"] = string(*f.Type)
	}
	if f.Status != nil {
		params["status"] = string(*f.Status)
	}
	if f.MinPrice != nil {
		params["minPrice"] = strconv.FormatFloat(*f.MinPrice, 'f', -1, 64)
	}
	if f.MaxPrice != nil {
		params["maxPrice"] = strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64)
	}
	if f.Bedrooms != nil {
		params["bedrooms"] = strconv.Itoa(*f.Bedrooms)
	}
	if f.Location != "" {
		// поиск без учета регистра, значит и ключ не должен от него зависеть
		params["location"] = strings.ToLower(f.Location)
	}
	return params
}
