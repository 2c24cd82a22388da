package ratelimit

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

const shardCount = 16

type windowEntry struct {
	count   int
	resetAt time.Time
}

type shard struct {
	mutex   sync.Mutex
	windows map[string]*windowEntry
}

// MemoryLimiter 进程内固定窗口计数器
// 分片降低锁竞争，后台定期清理过期窗口，避免进程级 map 无限增长
type MemoryLimiter struct {
	limit  int
	window time.Duration
	shards [shardCount]*shard
	stop   chan struct{}
	once   sync.Once
}

// NewMemoryLimiter 创建内存限流器并启动清理任务
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		limit:  limit,
		window: window,
		stop:   make(chan struct{}),
	}
	for i := range l.shards {
		l.shards[i] = &shard{windows: make(map[string]*windowEntry)}
	}
	go l.sweep()
	return l
}

// Allow 对 key 计数一次
func (l *MemoryLimiter) Allow(ctx context.Context, key string) (Result, error) {
	s := l.shardFor(key)
	now := time.Now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, ok := s.windows[key]
	if !ok || now.After(entry.resetAt) {
		entry = &windowEntry{resetAt: now.Add(l.window)}
		s.windows[key] = entry
	}
	entry.count++

	remaining := l.limit - entry.count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   entry.count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   entry.resetAt,
	}, nil
}

// Close 停止清理任务
func (l *MemoryLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *MemoryLimiter) shardFor(key string) *shard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return l.shards[h.Sum32()%shardCount]
}

// sweep 定期删除已过期的窗口
func (l *MemoryLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			for _, s := range l.shards {
				s.mutex.Lock()
				for key, entry := range s.windows {
					if now.After(entry.resetAt) {
						delete(s.windows, key)
					}
				}
				s.mutex.Unlock()
			}
		}
	}
}
