// Package ratelimit 提供按调用方身份计数的固定窗口限流
package ratelimit

import (
	"context"
	"time"
)

// Result 一次限流判定的结果
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter 固定窗口限流器
// 多实例部署使用 redis 实现，单实例/开发环境退化为内存实现
type Limiter interface {
	// Allow 对 key 在当前窗口内计数一次并返回判定
	Allow(ctx context.Context, key string) (Result, error)
}
