package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache 进程级共享缓存，存放电影详情、类型列表等跨请求复用的数据
var Cache *cache.Cache

// InitCache 初始化共享缓存，默认 5 分钟过期、每 10 分钟清理一次
func InitCache() {
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet 读取共享缓存
func CacheGet(key string) (interface{}, bool) {
	return Cache.Get(key)
}

// CacheSet 写入共享缓存并指定有效期
func CacheSet(key string, value interface{}, duration time.Duration) {
	Cache.Set(key, value, duration)
}

// cachedValue 附带过期时间的缓存值
type cachedValue[T any] struct {
	value     T
	expiredAt time.Time
}

// QueryCache 查询结果缓存：LRU 控制容量上限，统一 TTL 控制新鲜度
// 目前用于 TMDB discover 查询，键为规范化后的查询串
type QueryCache[T any] struct {
	storage *lru.Cache[string, cachedValue[T]]
	ttl     time.Duration
}

// NewQueryCache size 为最大条数，ttl 为数据有效期
func NewQueryCache[T any](size int, ttl time.Duration) *QueryCache[T] {
	c, _ := lru.New[string, cachedValue[T]](size)
	return &QueryCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set 写入，同键覆盖并刷新有效期
func (c *QueryCache[T]) Set(key string, value T) {
	c.storage.Add(key, cachedValue[T]{
		value:     value,
		expiredAt: time.Now().Add(c.ttl),
	})
}

// Get 读取，过期条目按未命中处理并顺手移除
func (c *QueryCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}

	if time.Now().After(item.expiredAt) {
		c.storage.Remove(key)
		return zero, false
	}

	return item.value, true
}

// Len 当前条数
func (c *QueryCache[T]) Len() int {
	return c.storage.Len()
}
