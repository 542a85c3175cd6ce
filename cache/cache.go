// Package cache 为上游 GET 请求提供带失效的短时缓存。
//
// 相同键的并发请求通过 singleflight 合并为一次上游调用，结果在 TTL
// 内复用；写操作按键前缀使缓存失效。
package cache

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value   any
	expires time.Time
}

// Group 一组共享 TTL 的缓存条目
type Group struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry

	flight singleflight.Group
}

// New 创建缓存组
func New(ttl time.Duration) *Group {
	return &Group{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Do 返回键对应的缓存值，未命中或已过期时调用 fn 取数并缓存
//
// 相同键的并发未命中只会触发一次 fn，其余调用方等待同一结果。
// fn 出错时不缓存错误，下一次调用会重新取数。
func (g *Group) Do(key string, fn func() (any, error)) (any, error) {
	if v, ok := g.lookup(key); ok {
		return v, nil
	}

	v, err, _ := g.flight.Do(key, func() (any, error) {
		// 排队等待期间可能已有别的调用完成取数
		if v, ok := g.lookup(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		g.mu.Lock()
		g.entries[key] = entry{value: v, expires: g.now().Add(g.ttl)}
		g.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Invalidate 删除所有以 prefix 开头的键
func (g *Group) Invalidate(prefix string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key := range g.entries {
		if strings.HasPrefix(key, prefix) {
			delete(g.entries, key)
		}
	}
}

func (g *Group) lookup(key string) (any, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[key]
	if !ok {
		return nil, false
	}
	if !g.now().Before(e.expires) {
		delete(g.entries, key)
		return nil, false
	}
	return e.value, true
}
